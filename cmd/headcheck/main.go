package main

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/milk9111/headgear"
	"github.com/milk9111/headgear/rig"
	"github.com/milk9111/headgear/scene"
	"github.com/milk9111/headgear/script"
)

type config struct {
	Tables string `env:"HEADGEAR_TABLES"`
	Rig    string `env:"HEADGEAR_RIG" envDefault:"dummy.yaml"`
	Pretty bool   `env:"HEADGEAR_PRETTY" envDefault:"true"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse environment")
	}

	rigFile := flag.String("rig", cfg.Rig, "character rig file under rig/")
	tablesFile := flag.String("tables", cfg.Tables, "category tables file (empty = embedded defaults)")
	hitPath := flag.String("hit", "", "slash path of a hit part to test for a headshot")
	scriptFile := flag.String("script", "", "tengo script to run against the rig")
	watch := flag.Bool("watch", false, "re-run when rig files change")
	flag.Parse()

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	c := &checker{
		rigFile:    *rigFile,
		tablesFile: *tablesFile,
		hitPath:    *hitPath,
		scriptFile: *scriptFile,
	}
	if c.reloadTables() && c.reloadCharacter() {
		c.report()
	}

	if !*watch {
		return
	}

	watcher, err := rig.NewWatcher("rig")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to watch rig directory")
	}
	defer watcher.Close()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			switch ev.Kind {
			case rig.KindTables:
				log.Info().Str("file", ev.Name).Msg("tables changed")
				if !c.reloadTables() {
					continue
				}
			default:
				log.Info().Str("file", ev.Name).Msg("rig changed")
				if !c.reloadCharacter() {
					continue
				}
			}
			c.report()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("rig watcher error")
		}
	}
}

// checker holds the loaded classifier and character so a table edit doesn't
// force a rig reload and vice versa.
type checker struct {
	rigFile    string
	tablesFile string
	hitPath    string
	scriptFile string

	cls       *headgear.Classifier
	character *scene.Part
}

func (c *checker) reloadTables() bool {
	tables, err := rig.LoadTables(c.tablesFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to load tables")
		return false
	}
	c.cls = headgear.New(tables)
	return true
}

func (c *checker) reloadCharacter() bool {
	character, err := rig.LoadCharacter(c.rigFile)
	if err != nil {
		log.Error().Err(err).Str("rig", c.rigFile).Msg("failed to load rig")
		return false
	}
	c.character = character
	return true
}

func (c *checker) report() {
	if c.cls == nil || c.character == nil {
		return
	}

	for _, child := range c.character.Children() {
		cat, ok := c.cls.AccessoryType(child)
		if !ok {
			continue
		}
		log.Info().
			Str("accessory", child.Name()).
			Str("category", string(cat)).
			Msg("classified accessory")
	}

	info := c.cls.Info(c.character)
	log.Info().
		Int("hair", len(info.Hair)).
		Int("hat", len(info.Hat)).
		Int("face", len(info.Face)).
		Int("total", info.Total).
		Bool("has_head_accessories", c.cls.HasHeadAccessories(c.character)).
		Msg("accessory summary")

	if c.hitPath != "" {
		hit := script.Resolve(c.character, c.hitPath)
		log.Info().
			Str("part", c.hitPath).
			Bool("headshot", c.cls.IsHeadshot(hit, c.character)).
			Msg("hit test")
	}

	if c.scriptFile != "" {
		src, err := os.ReadFile(c.scriptFile)
		if err != nil {
			log.Error().Err(err).Str("script", c.scriptFile).Msg("failed to read script")
			return
		}
		if _, err := script.Run(c.cls, c.character, src); err != nil {
			log.Error().Err(err).Str("script", c.scriptFile).Msg("script failed")
		}
	}
}
