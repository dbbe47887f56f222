// Package prompts holds the guided writing prompts and daily affirmations.
package prompts

import "math/rand"

// Guided returns the journaling prompt catalog.
func Guided() []string {
	return []string{
		"What was the high point and low point of your day?",
		"Describe a challenge you faced today and how you handled it.",
		"What are three things you are grateful for right now?",
		"How are you feeling physically and emotionally at this moment?",
		"What's one thing you learned today, about yourself or the world?",
		"Is there anything you're worrying about? Write it down.",
		"What's a small act of kindness you witnessed or performed today?",
		"Reflect on a moment today when you felt truly present.",
		"What is one thing you could do tomorrow to make it a better day?",
		"Describe something beautiful you noticed today.",
	}
}

// Affirmations returns the daily affirmation catalog.
func Affirmations() []string {
	return []string{
		"I am capable of amazing things.",
		"I choose to find joy in the ordinary.",
		"I am resilient and can handle whatever comes my way.",
		"Today is a new opportunity for growth and happiness.",
		"I am grateful for the good in my life.",
		"I approach this day with a positive attitude.",
		"I am worthy of love and respect.",
		"I embrace challenges as chances to learn.",
		"My potential is limitless.",
		"I radiate positivity and attract good things.",
		"I am in control of my thoughts and actions.",
		"I trust the journey, even when I don't understand it.",
		"Every day, in every way, I am getting better and better.",
		"I am enough, just as I am.",
		"I choose peace over worry.",
		"I am creating a life I love.",
		"I believe in my ability to succeed.",
		"My mind is filled with positive thoughts.",
		"I am strong, I am confident, I am happy.",
		"I give myself permission to shine.",
	}
}

// RandomGuided picks one guided prompt.
func RandomGuided() string {
	g := Guided()
	return g[rand.Intn(len(g))]
}

// RandomAffirmation picks one affirmation.
func RandomAffirmation() string {
	a := Affirmations()
	return a[rand.Intn(len(a))]
}
