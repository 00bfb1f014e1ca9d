package cubestate

// strip is a 3-cell row or column on one face that borders a turning face.
// Cells are read and written in index order 0,1,2, or 2,1,0 when reversed.
type strip struct {
	face     Face
	column   bool // column strip when true, row strip otherwise
	index    int
	reversed bool
}

// cells returns the (row, col) coordinates of the strip in read order.
func (st strip) cells() [3][2]int {
	var out [3][2]int
	for i := 0; i < 3; i++ {
		k := i
		if st.reversed {
			k = 2 - i
		}
		if st.column {
			out[i] = [2]int{k, st.index}
		} else {
			out[i] = [2]int{st.index, k}
		}
	}
	return out
}

func rowStrip(face Face, index int, reversed bool) strip {
	return strip{face: face, index: index, reversed: reversed}
}

func colStrip(face Face, index int, reversed bool) strip {
	return strip{face: face, column: true, index: index, reversed: reversed}
}

// adjacency lists, per face, the four bordering strips in the order a
// clockwise turn carries them. Faces are viewed from outside with the
// standard net: U above F, D below F, B's left column touching R.
var adjacency = [6][4]strip{
	// U affects F, L, B, R top rows
	FaceU: {rowStrip(FaceF, 0, false), rowStrip(FaceL, 0, false), rowStrip(FaceB, 0, false), rowStrip(FaceR, 0, false)},
	// D affects F, R, B, L bottom rows
	FaceD: {rowStrip(FaceF, 2, false), rowStrip(FaceR, 2, false), rowStrip(FaceB, 2, false), rowStrip(FaceL, 2, false)},
	// F affects U bottom, R left, D top, L right
	FaceF: {rowStrip(FaceU, 2, false), colStrip(FaceR, 0, false), rowStrip(FaceD, 0, true), colStrip(FaceL, 2, true)},
	// B affects U top, L left, D bottom, R right
	FaceB: {rowStrip(FaceU, 0, true), colStrip(FaceL, 0, false), rowStrip(FaceD, 2, false), colStrip(FaceR, 2, true)},
	// L affects U left, F left, D left, B right
	FaceL: {colStrip(FaceU, 0, false), colStrip(FaceF, 0, false), colStrip(FaceD, 0, false), colStrip(FaceB, 2, true)},
	// R affects U right, B left, D right, F right
	FaceR: {colStrip(FaceU, 2, false), colStrip(FaceB, 0, true), colStrip(FaceD, 2, false), colStrip(FaceF, 2, false)},
}
