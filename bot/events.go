package bot

import (
	"beitrag/handler"
	"beitrag/handler/beitrag"

	"github.com/bwmarrin/discordgo"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)
	s.AddHandler(beitrag.MessageCreate)

	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsGuilds | discordgo.IntentMessageContent
}
