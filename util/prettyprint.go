package util

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrettyPrint attempts to serialize given value as JSON with indentation and
// write the result to w. In case serialization to JSON fails, corresponding
// error is returned and nothing is written.
func PrettyPrint(w io.Writer, obj interface{}) error {
	pretty, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(pretty))
	return err
}
