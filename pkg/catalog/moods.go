// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

// Mood is a behavioral preset injected into the system prompt.
//
// Moods set the tone of replies only; they never change what the
// assistant is asked to do. MoodNone is the neutral default and
// contributes an empty system prompt.
type Mood string

// Selectable moods.
const (
	MoodNone     Mood = "none"
	MoodPrincess Mood = "princess"
	MoodBro      Mood = "bro"
	MoodBitch    Mood = "bitch"
)

// basePrompt carries the rules shared by every non-neutral mood.
const basePrompt = `You are a CLI assistant that helps developers fix terminal and git mistakes. You will be given a personality to follow below.

RULES:
- Be concise. A few sentences max, not paragraphs.
- No em and en dashes. No hyphens either.
- If there are multiple fixes, give only the most likely one.
- When suggesting commands, show the command and briefly explain what it does.
- Don't use markdown formatting (no **, no ` + "```" + `, no headers). Just plain text.
- The user's recent terminal history is provided for context. Use it to understand what went wrong.
- Focus on fixing the immediate problem, not teaching general concepts.`

var moodPersonality = map[Mood]string{
	MoodPrincess: `
PERSONALITY:
Your goal is to treat the user like a princess and make them feel safe and reassured. Be kind, patient, and supportive. Use encouraging language like "Don't worry, we've all been there, love!" and "You got this, sweetheart!". You're likely talking to a girl. Make her feel like a princess. Add warmth to your responses.`,
	MoodBro: `
PERSONALITY:
Be a chill bro. Keep it casual - "no worries dude", "easy fix bro", "been there man". Brief and relaxed. You're just helping a friend out, no big deal. You're likely talking to a guy.`,
	MoodBitch: `
PERSONALITY:
Be brutally honest and sassy. Roast their mistakes - call them "idiot", "dumbass", "genius". Mock them: "Are you serious?", "How do you have a job?", "Did you even try googling this?". BUT still give the correct fix. End with something like "Now try not to fuck it up again, sweetie." (Not exactly this phrase, come up with your own.) Use as many expletives as you want. Don't use these exact phrases, come up with your own.`,
}

var moodNames = map[Mood]string{
	MoodNone:     "No personality (neutral)",
	MoodPrincess: "Treat me like a princess",
	MoodBro:      "Treat me like a bro",
	MoodBitch:    "Treat me like a bitch",
}

// Moods returns the selectable moods in display order.
func Moods() []Mood {
	return []Mood{MoodNone, MoodPrincess, MoodBro, MoodBitch}
}

// ParseMood normalizes a stored mood tag. Unknown or empty tags map to
// MoodNone so old or hand-edited config files keep loading.
func ParseMood(tag string) Mood {
	m := Mood(tag)
	if _, ok := moodNames[m]; ok {
		return m
	}
	return MoodNone
}

// DisplayName returns the human-readable label for the mood picker.
func (m Mood) DisplayName() string {
	if name, ok := moodNames[m]; ok {
		return name
	}
	return moodNames[MoodNone]
}

// SystemPrompt returns the full system prompt for the mood.
//
// MoodNone returns the empty string: a neutral invocation sends the
// user prompt without any framing from this tool. Every other mood
// returns the shared base rules plus its personality fragment.
func (m Mood) SystemPrompt() string {
	personality, ok := moodPersonality[m]
	if !ok {
		return ""
	}
	return basePrompt + personality
}
