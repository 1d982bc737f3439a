package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rollcall/bot/attendance"
	"rollcall/bot/commands"
	"rollcall/bot/events"
	"rollcall/bot/handlers"
	"rollcall/bot/models"
	"rollcall/bot/rolewatch"
	"rollcall/bot/tasks"
)

var (
	REGISTER_COMMANDS = flag.Bool("register-commands", true, "True by default (useful in development)")
	TESTING           = flag.Bool("testing", false, "")
)

var s *discordgo.Session
var db *gorm.DB

func init() { flag.Parse() }

func init() {
	// Load .env only if --testing=true
	if *TESTING {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	// Load BotToken
	BotToken := os.Getenv("BOT_TOKEN")

	var err error
	s, err = discordgo.New("Bot " + BotToken)
	if err != nil {
		log.Fatalf("Invalid bot parameters: %v", err)
	}
	s.Identify.Intents |= discordgo.IntentGuildMembers
	s.Identify.Intents |= discordgo.IntentGuildMessages
	s.Identify.Intents |= discordgo.IntentGuildMessageReactions

	// Reactions on the same message must be handled in delivery order, each
	// edit carrying the state of the reaction that triggered it.
	s.SyncEvents = true
}

func init() {
	var err error
	db, err = gorm.Open(postgres.Open(os.Getenv("POSTGRES_DSN")), &gorm.Config{})

	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	if !db.Migrator().HasTable(&models.GuildConfig{}) {
		db.Migrator().CreateTable(&models.GuildConfig{})
	}

	if !db.Migrator().HasColumn(&models.GuildConfig{}, "events_channel_id") {
		db.Migrator().AddColumn(&models.GuildConfig{}, "events_channel_id")
	}
}

func main() {
	eventStore := attendance.NewStore()
	watchStore := rolewatch.NewStore()

	s.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})

	s.AddHandler(handlers.InteractionCreateHandler(db, eventStore, watchStore))
	s.AddHandler(events.ReactionAddEventHandler(eventStore))
	s.AddHandler(events.ReactionRemoveEventHandler(eventStore))
	s.AddHandler(events.MessageDeleteEventHandler(eventStore))

	err := s.Open()

	if err != nil {
		log.Fatalf("Cannot open the session: %v", err)
	}

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.Every(1).Minute().Do(tasks.ReminderCheck(eventStore, s))
	scheduler.StartAsync()

	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands.Commands))
	guildId := "" // Empty to register global commands
	if *REGISTER_COMMANDS {
		log.Println("Adding commands...")

		for i, command := range commands.Commands {

			cmd, err := s.ApplicationCommandCreate(s.State.User.ID, guildId, command)

			if err != nil {
				log.Panicf("Cannot create '%v' command: %v", command.Name, err)
			}

			registeredCommands[i] = cmd
		}
	}

	defer s.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	log.Println("Press Ctrl+C to exit")
	<-stop

	scheduler.Stop()

	CLEAN_COMMANDS_AFTER_SHUTDOWN := os.Getenv("CLEAN_COMMANDS_AFTER_SHUTDOWN")

	if CLEAN_COMMANDS_AFTER_SHUTDOWN == "true" {
		log.Println("Removing commands...")

		for _, command := range registeredCommands {
			err := s.ApplicationCommandDelete(s.State.User.ID, guildId, command.ID)

			if err != nil {
				log.Panicf("Cannot delete '%v' command: %v", command.Name, err)
			}

		}
	}

	log.Println("Gracefully shutting down.")
}
