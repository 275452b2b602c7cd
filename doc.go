// Package menu provides numbered selection menus for line-based terminal prompts.
//
// A menu prints a list of items with generated labels, reads one line from
// the user and resolves it to either one of the items or free-form text.
//
// Key Features:
//
//   - Generic, immutable menu values built with With* methods
//   - Selection by label (" 1", " 2", ...) or by unique text prefix
//   - Tab completion of item text while the menu is asked
//   - A retry loop that re-asks with an error message until an item matches
//   - Pluggable labels, item rendering and answer resolution
//   - A terminal line engine with themes, key bindings and context support
//
// Quick Start:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		"github.com/nao1215/menu"
//	)
//
//	func main() {
//		engine, err := menu.NewLineEngine()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer engine.Close()
//
//		m := menu.New("apple", "banana", "cherry").
//			WithBanner(menu.Plain("Pick a fruit"))
//
//		fruit, err := menu.AskRepeatedly(context.Background(), engine, m, "> ",
//			menu.Plain("Please pick one of the listed fruits"))
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("You picked", fruit)
//	}
//
// The menu above prints:
//
//	Pick a fruit
//
//	   1) apple
//	   2) banana
//	   3) cherry
//	> 1
//
// The first label is the default answer. It is shown dimmed after the
// prompt and chosen when Enter is pressed on an empty line; typing replaces
// it.
//
// Resolution Rules:
//
// The default resolver trims the answer and then:
//
//   - selects the item whose text is the only one starting with the answer
//     ("ban" selects "banana"; matching is case-sensitive)
//   - otherwise selects the item with that label ("2" selects "banana")
//   - otherwise returns Other with the untrimmed answer
//
// A unique prefix match wins over a label. With items "9 Lives" and label "9",
// the answer "9" selects "9 Lives" rather than the ninth item.
//
// Custom Engines:
//
// Ask and AskRepeatedly only need an Engine. Any line editor that can print a
// Text, keep a stack of completers and read a line with a default value can
// host a menu; LineEngine is the implementation provided here.
//
// Error Handling:
//
//   - menu.ErrInterrupted: User pressed Ctrl+C
//   - menu.ErrEOF: User pressed Ctrl+D on an empty line or input ended
//   - context.Canceled / context.DeadlineExceeded: ctx ended between key presses
//   - menu.ErrNoItems: FromSlice was given an empty slice
//
// Errors from the engine's AskLine are returned by Ask and AskRepeatedly
// unchanged. Failures to print the menu are wrapped; use errors.Is for those.
// The completer pushed for a round is popped on every return path.
package menu
