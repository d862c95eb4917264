package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fragma/internal/crypto"
	"fragma/internal/domain"
	"fragma/internal/util/memzero"
)

// init: provision a session — domain tag, K0, and sealed state for both ends.
func initCmd() *cobra.Command {
	var (
		contentFree bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Provision a session and seal emitter and receiver state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			exists, err := wire.Store.Provisioned()
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("session state already exists in %s; pass --force to replace it", wire.Config.Home)
			}

			tag, err := crypto.GenerateDomainTag(crypto.MinDomainTagSize)
			if err != nil {
				return err
			}
			seed, err := crypto.GenerateSeed(crypto.SeedSize)
			if err != nil {
				return err
			}
			defer memzero.Zero(seed)

			err = wire.Store.SaveEmitter(passphrase, domain.EmitterSnapshot{
				DomainTag:      tag,
				Seed:           seed.Clone(),
				FragmentLength: wire.Config.FragmentLength,
				ContentFree:    contentFree,
			})
			if err != nil {
				return err
			}
			err = wire.Store.SaveReceiver(passphrase, domain.ReceiverSnapshot{
				DomainTag:      tag,
				Seed:           seed.Clone(),
				FragmentLength: wire.Config.FragmentLength,
				ContentFree:    contentFree,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Session provisioned.\nDomain tag fingerprint: %s\n", crypto.Fingerprint(tag))
			return nil
		},
	}
	cmd.Flags().BoolVar(&contentFree, "content-free", false, "bind no payload; fragments authenticate steps only")
	cmd.Flags().BoolVar(&force, "force", false, "replace existing session state")
	return cmd
}
