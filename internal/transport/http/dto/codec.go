package dto

import "github.com/bytedance/sonic"

// JSON is the codec for every body and frame the API reads or writes.
// Strings are checked for valid UTF-8 and copied out of the request buffer,
// which fasthttp reuses once the handler returns.
var JSON = sonic.Config{
	EscapeHTML:     true,
	ValidateString: true,
	CopyString:     true,
}.Froze()
