package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the declare CLI version and build time.",
		Usage: "declare version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}
