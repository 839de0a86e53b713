package content

// Section is one block of portfolio copy rendered below the banner.
type Section struct {
	Title string
	Body  []string
}

// DefaultSections returns the built-in portfolio copy.
func DefaultSections() []Section {
	return []Section{
		{
			Title: "about",
			Body: []string{
				"Terminal-native portfolio shell with a particle banner.",
				"Everything on screen is a character cell; everything that",
				"moves is driven by one frame scheduler.",
				"",
				"Navigate with vi keys. Hover the banner with the mouse to",
				"wake the active effect, press n to try the next one.",
			},
		},
		{
			Title: "projects",
			Body: []string{
				"- banner engine   particle store, six hover effects,",
				"                  deterministic rebuilds on resize",
				"- frame scheduler cooperative task loop with pause,",
				"                  drift-corrected ticks and fault isolation",
				"- export pipeline PNG snapshots and clipboard copies of",
				"                  the live banner",
			},
		},
		{
			Title: "keys",
			Body: []string{
				"j / k     scroll        gg / G   top / bottom",
				"n / N     switch effect i        insert (type!)",
				"v         select        :        command line",
				"esc       back to nav   :help    all commands",
			},
		},
		{
			Title: "contact",
			Body: []string{
				"mail      hello@termfolio.dev",
				"source    git.sr.ht/~termfolio/termfolio",
				"",
				"Built for terminals that still believe in mice.",
			},
		},
	}
}
