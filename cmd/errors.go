package cmd

import (
	"fmt"

	"github.com/mdsplice/mdsplice/internal/jsonout"
	"github.com/mdsplice/mdsplice/internal/spliceerr"
	"github.com/mdsplice/mdsplice/internal/ui"
)

// reportError prints err either as a one-line styled message or, under
// --json, as a jsonout.ErrorEnvelope — mirroring the teacher's
// output.Error/plain-fmt.Errorf split in show.go/edit.go.
func reportError(err error, asJSON bool) error {
	if !asJSON {
		fmt.Println(ui.Err(err.Error()))
		return err
	}

	kind := "Unknown"
	payload := ""
	if se, ok := err.(*spliceerr.Error); ok {
		kind = se.Kind.String()
		payload = se.Payload
	} else if k, ok := spliceerr.KindOf(err); ok {
		kind = k.String()
	}

	out, marshalErr := jsonout.Plain(jsonout.ErrorEnvelope{Error: err.Error(), Kind: kind, Payload: payload})
	if marshalErr != nil {
		return err
	}
	fmt.Println(out)
	return err
}
