package wordle

import "math/rand"

// NoticeKind identifies a user-facing message.
type NoticeKind int

const (
	NoticeWelcome NoticeKind = iota
	NoticeNotEnoughLetters
	NoticeUnknownWord
	NoticeWon
	NoticeLost
)

// Sound is an audio cue a presentation layer may play with a notice.
type Sound int

const (
	SoundNone Sound = iota
	SoundIntro
	SoundInvalid
	SoundPraise
)

// Notice is a message for the player.
type Notice struct {
	Kind   NoticeKind
	Text   string
	Sound  Sound
	Praise int // 1-based win message index, 0 unless Kind is NoticeWon
}

// Sticky reports whether the notice marks the end of the game and should
// stay on screen.
func (n Notice) Sticky() bool {
	return n.Kind == NoticeWon || n.Kind == NoticeLost
}

// Fixed notice texts.
const (
	WelcomeText          = "Welcome to Word of the Day!"
	NotEnoughLettersText = "Not enough letters"
	UnknownWordText      = "???"
)

// WinMessages are the praise lines shown on a win, one picked at random.
var WinMessages = [10]string{
	"Good job!",
	"Well done!",
	"Nice work!",
	"You're awesome!",
	"Great effort!",
	"You did it!",
	"That's amazing!",
	"I'm proud of you!",
	"Keep it up!",
	"You're doing great",
}

func welcomeNotice() Notice {
	return Notice{Kind: NoticeWelcome, Text: WelcomeText, Sound: SoundIntro}
}

func notEnoughLettersNotice() Notice {
	return Notice{Kind: NoticeNotEnoughLetters, Text: NotEnoughLettersText, Sound: SoundInvalid}
}

func unknownWordNotice() Notice {
	return Notice{Kind: NoticeUnknownWord, Text: UnknownWordText, Sound: SoundInvalid}
}

func winNotice(rng *rand.Rand) Notice {
	i := rng.Intn(len(WinMessages))
	return Notice{Kind: NoticeWon, Text: WinMessages[i], Sound: SoundPraise, Praise: i + 1}
}

// lossNotice reveals the target word.
func lossNotice(target Word) Notice {
	return Notice{Kind: NoticeLost, Text: target.String()}
}
