package main

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "duet",
	Short: "Persona-driven chat server backed by interchangeable LLM providers",
	Long: `duet serves a persona-driven conversation API. Each thread is bound to a
persona and a provider selection ("<vendor>:<model>"); replies are generated
by Gemini, OpenRouter, Groq or a local Ollama daemon and paced with a
synthetic typing delay.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "duet.yaml", "path to config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
}
