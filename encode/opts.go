package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// LineWidth sets the longest single-line array rendering, in bytes.
// Widths below 1 are ignored.
func LineWidth(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.width = n
		}
	}
}

// IndentSize sets the number of spaces per indent level.
func IndentSize(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 0 {
			es.indent = n
		}
	}
}
