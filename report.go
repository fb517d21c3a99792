// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package floors

import (
	"fmt"
	"io"
)

func PrintBasement(w io.Writer, position int) error {
	_, err := fmt.Fprintf(w, "First reached basement at position: %d\n", position)
	return err
}

func PrintFinalFloor(w io.Writer, floor int) error {
	_, err := fmt.Fprintf(w, "Final floor: %d\n", floor)
	return err
}
