// Package main demonstrates custom labels, item rendering and resolution.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/menu"
)

type environment struct {
	name   string
	region string
}

func main() {
	engine, err := menu.NewLineEngine(menu.WithTheme(menu.ThemeNightOwl))
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	theme := menu.ThemeNightOwl
	m := menu.New(
		environment{"staging", "eu-west-1"},
		environment{"production", "us-east-1"},
		environment{"sandbox", "ap-northeast-1"},
	).
		WithBanner(theme.BannerText("Deploy to which environment? (q to quit)")).
		WithLabeler(menu.PadLabel(2, menu.LetterLabel)).
		WithDisplay(func(e environment) menu.Text {
			return menu.Plain(e.name + " (" + e.region + ")")
		}).
		WithResolver(func(m menu.Menu[environment], labels menu.LabelMap[environment], raw string) menu.Resolution[environment] {
			// Also accept the bare environment name in any case
			clean := strings.ToLower(strings.TrimSpace(raw))
			for _, e := range m.Items() {
				if e.name == clean {
					return menu.Match(e)
				}
			}
			return menu.DefaultResolver(m, labels, raw)
		})

	for {
		res, err := menu.Ask(context.Background(), engine, m, "env> ")
		if err != nil {
			log.Fatal(err)
		}
		if env, ok := res.Matched(); ok {
			fmt.Printf("Deploying to %s in %s\n", env.name, env.region)
			return
		}
		if raw, _ := res.Other(); strings.TrimSpace(raw) == "q" {
			fmt.Println("Cancelled")
			return
		}
		if err := engine.PrintLine(theme.ErrorText("Unknown environment")); err != nil {
			log.Fatal(err)
		}
	}
}
