// Package roll implements the bot's tabletop rules: percentile (d100) checks
// against a target number, free-form dice expressions, character sheet
// generation and random choices. It produces reply text in Telegram HTML.
//
// Randomness always comes from a dice.Roller or dice.Source so every rule can
// be tested with fixed outcomes.
package roll
