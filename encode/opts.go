package encode

type EncodeOption func(*EncState)

// EncodeIndent pretty-prints container output with the given indent
// string. The empty string means compact output.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}

// EncodeColors colorizes container output for terminals.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
