// Package main demonstrates basic usage of the menu library.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/menu"
)

func main() {
	engine, err := menu.NewLineEngine()
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	m := menu.New("apple", "banana", "cherry").
		WithBanner(menu.Plain("Which fruit would you like?"))

	fruit, err := menu.AskRepeatedly(context.Background(), engine, m, "fruit> ",
		menu.Plain("Type a number or the start of a fruit name"))
	if err != nil {
		if errors.Is(err, menu.ErrEOF) || errors.Is(err, menu.ErrInterrupted) {
			fmt.Println("Goodbye!")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("You picked %s\n", fruit)
}
