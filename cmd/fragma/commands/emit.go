package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// emit [message]: build and send the next fragment. Content-free sessions
// take no message.
func emitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emit [message]",
		Short: "Build and send the next fragment on the channel",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if wire.Emitter == nil {
				return fmt.Errorf("no relay configured; use --relay")
			}
			var content []byte
			if len(args) == 1 {
				content = []byte(args[0])
			}

			index, err := wire.Emitter.Emit(cmd.Context(), passphrase, content)
			if err != nil {
				return err
			}
			fmt.Printf("emitted fragment %d\n", index)
			return nil
		},
	}
}
