package encode

type EncodeOption func(*EncState)

// Indent enables multi-line output with the given per-level indent.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// EncodeColors sets the color table used for terminal output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
