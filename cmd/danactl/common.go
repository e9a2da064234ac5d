package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dana-network/danad/domain/dana/txscript"
)

// printSection prints a section and the OP_RETURN script carrying it alone.
func printSection(out io.Writer, section []byte) error {
	script, err := txscript.EmppScript(section)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Section: %s\n", hex.EncodeToString(section))
	fmt.Fprintf(out, "Script:  %s\n", hex.EncodeToString(script))
	return nil
}
