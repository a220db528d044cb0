package bot

import (
	"beitrag/command"
	"beitrag/config"
	"beitrag/handler/beitrag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
)

var dg *discordgo.Session

// Start runs the bot until SIGINT/SIGTERM.
func Start() {
	err := config.LoadConfig()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return
	}

	beitrag.RegisterHandlers()

	if config.Cfg.Token == "" {
		log.Println("Warning: Token is empty!")
	}

	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Printf("error creating Discord session, %v", err)
		return
	}

	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Printf("error opening connection, %v", err)
		return
	}

	for _, guildID := range config.Cfg.Commands.Allowguils {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatalf("Cannot create '%v' command: %v", cmd.Name, err)
			}
		}
	}

	log.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
