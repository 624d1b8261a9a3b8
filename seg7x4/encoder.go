// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package seg7x4

// Digit is a single decimal digit in [0,9]. It is produced by Decompose;
// indexing the pattern table with anything else is a caller bug and panics.
type Digit byte

// DecimalPoint is the decimal point segment, bit 7 of a segment byte. The
// display is common anode so segments are active low: clear the bit to
// light the dot.
const DecimalPoint byte = 0x80

// patterns maps a digit to its segment byte. Bit order is dp g f e d c b a,
// inverted for a common-anode display (0 = segment on).
var patterns = [10]byte{
	^byte(0x3F), // 0: a b c d e f
	^byte(0x06), // 1: b c
	^byte(0x5B), // 2: a b d e g
	^byte(0x4F), // 3: a b c d g
	^byte(0x66), // 4: b c f g
	^byte(0x6D), // 5: a c d f g
	^byte(0x7D), // 6: a c d e f g
	^byte(0x07), // 7: a b c
	^byte(0x7F), // 8: all segments
	^byte(0x6F), // 9: a b c d f g
}

// positions maps a slot index to the one-hot byte that selects the matching
// physical digit, leftmost first. Overlapping bits would light two digits at
// once, so each entry carries exactly one bit.
var positions = [4]byte{0x01, 0x02, 0x04, 0x08}

// Pattern returns the segment byte for a digit, decimal point off.
func Pattern(d Digit) byte {
	return patterns[d]
}

// PositionMask returns the digit-select byte for a slot in [0,3].
func PositionMask(slot int) byte {
	return positions[slot]
}

// Decompose splits a non-negative integer into its 4 decimal digits,
// thousands first. Values of 10000 and above are truncated by the modulo:
// 12345 displays as 2345.
func Decompose(n int) [4]Digit {
	return [4]Digit{
		Digit(n / 1000 % 10),
		Digit(n / 100 % 10),
		Digit(n / 10 % 10),
		Digit(n % 10),
	}
}
