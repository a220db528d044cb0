package main

import (
	"beitrag/bot"
	"beitrag/db"
)

func main() {
	db.InitDB()
	bot.Start()
}
