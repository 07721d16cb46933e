package keyglyphs

// 5x7 glyphs in the left five columns; the sixth column and last row are spacing.
var glyphs = map[rune]*[8]byte{
	' ': {},
	'0': {0b011100, 0b100010, 0b100110, 0b101010, 0b110010, 0b100010, 0b011100, 0},
	'1': {0b001000, 0b011000, 0b001000, 0b001000, 0b001000, 0b001000, 0b011100, 0},
	'2': {0b011100, 0b100010, 0b000010, 0b000100, 0b001000, 0b010000, 0b111110, 0},
	'3': {0b111110, 0b000100, 0b001000, 0b000100, 0b000010, 0b100010, 0b011100, 0},
	'4': {0b000100, 0b001100, 0b010100, 0b100100, 0b111110, 0b000100, 0b000100, 0},
	'5': {0b111110, 0b100000, 0b111100, 0b000010, 0b000010, 0b100010, 0b011100, 0},
	'6': {0b001100, 0b010000, 0b100000, 0b111100, 0b100010, 0b100010, 0b011100, 0},
	'7': {0b111110, 0b000010, 0b000100, 0b001000, 0b010000, 0b010000, 0b010000, 0},
	'8': {0b011100, 0b100010, 0b100010, 0b011100, 0b100010, 0b100010, 0b011100, 0},
	'9': {0b011100, 0b100010, 0b100010, 0b011110, 0b000010, 0b000100, 0b011000, 0},
	'.': {0, 0, 0, 0, 0, 0b011000, 0b011000, 0},
	'-': {0, 0, 0, 0b111110, 0, 0, 0, 0},
	'+': {0, 0b001000, 0b001000, 0b111110, 0b001000, 0b001000, 0, 0},
	'=': {0, 0, 0b111110, 0, 0b111110, 0, 0, 0},
	'%': {0b110000, 0b110010, 0b000100, 0b001000, 0b010000, 0b100110, 0b000110, 0},
	'×': {0, 0b100010, 0b010100, 0b001000, 0b010100, 0b100010, 0, 0},
	'÷': {0, 0b001000, 0, 0b111110, 0, 0b001000, 0, 0},
	'±': {0b001000, 0b001000, 0b111110, 0b001000, 0b001000, 0, 0b111110, 0},
	'A': {0b011100, 0b100010, 0b100010, 0b111110, 0b100010, 0b100010, 0b100010, 0},
	'C': {0b011100, 0b100010, 0b100000, 0b100000, 0b100000, 0b100010, 0b011100, 0},
	'I': {0b011100, 0b001000, 0b001000, 0b001000, 0b001000, 0b001000, 0b011100, 0},
	'N': {0b100010, 0b100010, 0b110010, 0b101010, 0b100110, 0b100010, 0b100010, 0},
	'a': {0, 0, 0b011100, 0b000010, 0b011110, 0b100010, 0b011110, 0},
	'e': {0, 0, 0b011100, 0b100010, 0b111110, 0b100000, 0b011100, 0},
	'f': {0b001100, 0b010010, 0b010000, 0b111000, 0b010000, 0b010000, 0b010000, 0},
	'i': {0b001000, 0, 0b011000, 0b001000, 0b001000, 0b001000, 0b011100, 0},
	'n': {0, 0, 0b101100, 0b110010, 0b100010, 0b100010, 0b100010, 0},
	't': {0b010000, 0b010000, 0b111000, 0b010000, 0b010000, 0b010010, 0b001100, 0},
	'y': {0, 0, 0b100010, 0b100010, 0b011110, 0b000010, 0b011100, 0},
	'…': {0, 0, 0, 0, 0, 0, 0b101010, 0},
	'?': {0b011100, 0b100010, 0b000010, 0b000100, 0b001000, 0, 0b001000, 0},
}
