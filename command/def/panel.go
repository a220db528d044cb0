package def

import (
	"github.com/bwmarrin/discordgo"
)

var CreatePanelCommand = &discordgo.ApplicationCommand{
	Name:        "panel",
	Description: "Erstellt das Einreichungs-Panel im konfigurierten Kanal",
}
