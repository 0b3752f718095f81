// Package prompts holds the fixed list a round's drawing prompt is
// picked from.
package prompts

import "math/rand"

var List = []string{
	"A cat surfing",
	"A robot walking a dog",
	"A dragon eating spaghetti",
	"A snowman on vacation",
	"A penguin driving a taxi",
	"An octopus playing drums",
	"A dinosaur at a birthday party",
	"A wizard doing laundry",
	"A shark in a bathtub",
	"An astronaut gardening on the moon",
	"A pirate afraid of water",
	"A giraffe in a phone booth",
	"A banana running a marathon",
	"A ghost ordering coffee",
	"A llama playing chess",
	"A bee delivering pizza",
}

func Random() string {
	return List[rand.Intn(len(List))]
}
