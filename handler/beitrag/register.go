package beitrag

import (
	"beitrag/command"
	"beitrag/db"
	"beitrag/handler"
	"beitrag/wizard"
)

var engine = wizard.NewEngine(db.PostStore{})

// RegisterHandlers registers all handlers for the beitrag package.
func RegisterHandlers() {
	handler.AddCommandHandler(command.CreatePanelCommand.Name, createPanelCommandHandler)

	// Wizard flow
	handler.AddComponentHandler("start_wizard", StartWizardHandler)
	handler.AddComponentHandler("wizard_choice", WizardChoiceHandler)
	handler.AddComponentHandler("wizard_cancel", CancelWizardHandler)

	// Panel extras
	handler.AddComponentHandler("my_post", MyPostHandler)
	handler.AddComponentHandler("how_to_submit", HowToSubmitHandler)
}
