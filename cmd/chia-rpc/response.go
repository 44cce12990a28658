package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/onederx/chia-rpc/util"
)

// showResponse returns a function printing response of a client call to
// command output, so that the call can be passed to it directly
func showResponse(cmd *cobra.Command) func(responseData interface{}, respErr error) error {
	return func(responseData interface{}, respErr error) error {
		if respErr != nil {
			return respErr
		}
		err := util.PrettyPrint(cmd.OutOrStdout(), responseData)

		if err != nil {
			return errors.Wrapf(err, "failed to marshal response data as JSON with indentation. Response data %v", responseData)
		}
		return nil
	}
}
