package board

// groupIndex validates a group index i in [0,9); out of range is a
// contract violation, not a recoverable condition.
func groupIndex(i int) {
	if i < 0 || i >= Size {
		panic("board: group index out of range")
	}
}

// RowCoords returns the 9 coordinates of row i, left to right:
// (i,0), (i,1), …, (i,8).
func RowCoords(i int) [Size]Coord {
	groupIndex(i)

	var coords [Size]Coord
	for col := 0; col < Size; col++ {
		coords[col] = Coord{Row: i, Col: col}
	}

	return coords
}

// ColCoords returns the 9 coordinates of column i, top to bottom:
// (0,i), (1,i), …, (8,i).
func ColCoords(i int) [Size]Coord {
	groupIndex(i)

	var coords [Size]Coord
	for row := 0; row < Size; row++ {
		coords[row] = Coord{Row: row, Col: i}
	}

	return coords
}

// BlockCoords returns the 9 coordinates of the i-th aligned 3×3 block in
// row-major order within the block. Blocks are numbered row-major across
// the grid: block i has its top-left corner at row (i/3)*3, col (i%3)*3,
// so block 0 covers (0,0)…(2,2) and block 8 covers (6,6)…(8,8).
func BlockCoords(i int) [Size]Coord {
	groupIndex(i)

	top := (i / blockSize) * blockSize
	left := (i % blockSize) * blockSize

	var coords [Size]Coord
	for dr := 0; dr < blockSize; dr++ {
		for dc := 0; dc < blockSize; dc++ {
			coords[dr*blockSize+dc] = Coord{Row: top + dr, Col: left + dc}
		}
	}

	return coords
}
