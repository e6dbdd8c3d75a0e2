package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/chiawen/mealtrack/cmd/mealtrack"
	"github.com/chiawen/mealtrack/internal/logger"
)

func main() {
	logger.Init()
	defer logger.Close()
	mealtrack.Execute()
}
