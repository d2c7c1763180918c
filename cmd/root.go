package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

func showHeader() {
	color.New(color.FgGreen, color.Bold).Println("📚 bookforge — bookstore demo-data generator")
	fmt.Print("   ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "bookforge",
	Short: "Populate a bookstore database with catalog and generated demo data",
	Long: `
bookforge fills a preexisting relational bookstore schema with a mix of
real data (imported from a book catalog CSV) and generated records:
authors, customers, orders, line items, reviews, inventory movements,
wishlists and discount codes.

All inserts run inside a single transaction, in dependency order, so a
failed run leaves the database untouched.

Database Support:
- PostgreSQL
- MySQL
- SQLite`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("bookforge version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showHeader()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bookforge.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("bookforge.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
