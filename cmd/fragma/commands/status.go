package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fragma/internal/crypto"
)

// status: show local session state. Works offline.
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show emitter index, receiver anchor and session fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			em, ok, err := wire.Store.LoadEmitter(passphrase)
			if err != nil {
				return err
			}
			if ok {
				fmt.Printf("emitter: index %d, tag %s", em.Index, crypto.Fingerprint(em.DomainTag))
				if em.ContentFree {
					fmt.Print(" (content-free)")
				}
				fmt.Println()
			} else {
				fmt.Println("emitter: not provisioned")
			}

			rc, ok, err := wire.Store.LoadReceiver(passphrase)
			if err != nil {
				return err
			}
			if ok {
				fmt.Printf("receiver: anchor %d, tag %s\n", rc.Anchor, crypto.Fingerprint(rc.DomainTag))
			} else {
				fmt.Println("receiver: not provisioned")
			}
			return nil
		},
	}
}
