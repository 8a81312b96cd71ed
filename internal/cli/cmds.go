package cli

func regCommands() {
	//Root
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
