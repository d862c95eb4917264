package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fragma/internal/domain"
)

// recv [message]: drain the channel and validate every queued fragment.
// The message must match what the emitter bound; omit it for content-free
// sessions.
func recvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recv [message]",
		Short: "Drain the channel and validate queued fragments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if wire.Receiver == nil {
				return fmt.Errorf("no relay configured; use --relay")
			}
			var content []byte
			if len(args) == 1 {
				content = []byte(args[0])
			}

			outcomes, err := wire.Receiver.Drain(cmd.Context(), passphrase, content)
			if err != nil {
				return err
			}
			if len(outcomes) == 0 {
				fmt.Println("channel empty")
				return nil
			}
			for _, o := range outcomes {
				if o.Result == domain.Accept {
					fmt.Printf("accept index %d (anchor now %d)\n", o.Index, o.Anchor)
				} else {
					fmt.Printf("reject (anchor stays %d)\n", o.Anchor)
				}
			}
			return nil
		},
	}
}
