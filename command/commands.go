package command

import (
	"beitrag/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.CreatePanelCommand,
}

// CreatePanelCommand is re-exported for handler registration.
var CreatePanelCommand = def.CreatePanelCommand
