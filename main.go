package main

import (
	"context"
	"errors"
	"gatebot/internal/adapters/catalog"
	"gatebot/internal/adapters/discord"
	"gatebot/internal/adapters/telegram"
	"gatebot/internal/core/domain/command"
	"gatebot/internal/core/port"
	"gatebot/internal/core/service"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting gatebot...")

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("bot.prefix", "!")
	viper.SetDefault("handler.timeout", "30s")
	viper.SetDefault("catalog.listen", ":8080")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Warn().Msg("no config file found, using environment only")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	owners, err := service.LoadOwnerSet()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid bot owner config")
	}

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timeout for handler in config")
	}

	prefix := viper.GetString("bot.prefix")

	commandRegistry := &command.Registry{}
	commandRegistry.MustRegister(
		command.NewHelp(commandRegistry, prefix),
		command.NewStats(commandRegistry, time.Now()),
	)

	var wg sync.WaitGroup

	if viper.GetBool("discord.enabled") {
		session, err := startDiscord(commandRegistry, owners, handlerTimeout, prefix)
		if err != nil {
			log.Fatal().Err(err).Msg("failed initializing discord bot")
		}
		defer session.Close()
	}

	if viper.GetBool("telegram.enabled") {
		b, handler, err := newTelegram(ctx, commandRegistry, owners, handlerTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("failed initializing telegram bot")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Start(ctx)
			handler.Wait()
		}()
	}

	if viper.GetBool("catalog.enabled") {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := catalog.NewServer(commandRegistry).Run(ctx, viper.GetString("catalog.listen")); err != nil {
				log.Error().Err(err).Msg("catalog server stopped")
			}
		}()
	}

	log.Info().Strs("commands", commandRegistry.ListCommands()).Msg("bot listening")
	<-ctx.Done()

	log.Info().Msg("shutting down...")
	wg.Wait()
}

func newDispatcher(host port.Host, owners *service.OwnerSet, timeout time.Duration) (*service.Dispatcher, error) {
	gate, err := service.NewGate(host, owners, service.NewMemoryCooldownStore())
	if err != nil {
		return nil, err
	}
	return service.NewDispatcher(gate, timeout), nil
}

func startDiscord(registry *command.Registry, owners *service.OwnerSet, timeout time.Duration,
	prefix string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + viper.GetString("discord.token"))
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	host := discord.NewHost(session, session.State)

	dispatcher, err := newDispatcher(host, owners, timeout)
	if err != nil {
		return nil, err
	}

	handler := discord.NewHandler(registry, dispatcher, session, host, prefix)
	session.AddHandler(handler.OnMessageCreate)
	session.AddHandler(handler.OnInteractionCreate)

	if err := session.Open(); err != nil {
		return nil, err
	}

	err = discord.SyncCommands(session, session.State.User.ID, viper.GetString("discord.guild_id"),
		registry.Commands())
	if err != nil {
		log.Warn().Err(err).Msg("slash commands unavailable")
	}

	log.Info().Str("user", session.State.User.Username).Msg("discord session open")
	return session, nil
}

func newTelegram(ctx context.Context, registry *command.Registry, owners *service.OwnerSet,
	timeout time.Duration) (*bot.Bot, *telegram.Handler, error) {
	b, err := bot.New(viper.GetString("telegram.token"), bot.WithDefaultHandler(noOpHandler))
	if err != nil {
		return nil, nil, err
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		return nil, nil, err
	}

	dispatcher, err := newDispatcher(telegram.NewHost(b, me.ID), owners, timeout)
	if err != nil {
		return nil, nil, err
	}

	handler := telegram.NewHandler(registry, dispatcher, b, me.Username)
	b.RegisterHandler(bot.HandlerTypeMessageText, telegram.Prefix, bot.MatchTypePrefix, handler.Handle)
	b.RegisterHandler(bot.HandlerTypePhotoCaption, telegram.Prefix, bot.MatchTypePrefix, handler.Handle)

	log.Info().Str("user", me.Username).Msg("telegram bot ready")
	return b, handler, nil
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
