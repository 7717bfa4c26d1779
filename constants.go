// this file holds the station's fixed data: stream endpoints, clubs,
// resident DJs, the seed feed and the 24h program grid
package main

const (
	StreamURL     = "https://radioelec.radioca.st/stream"
	StatusPageURL = "https://philae.shoutca.st/system/streaminfo.js"
	AdminEmail    = "radio-electro-paris1@hotmail.fr"
	SiteURL       = "https://radioelectroparis.fr"
)

// codes handed out to listeners who want to join as members
var SecretCodes = []string{
	"PARIS-NIGHT-001",
	"ELECTRO-VIBE-2024",
	"LOUVRE-TECHNO",
	"ARC-DE-TRIONPHE-SET",
	"BASTILLE-DEEP",
	"PIGALLE-HOUSE",
	"MARAIS-MINIMAL",
	"EIFFEL-BEAT-75",
	"REXY-GUEST-22",
	"BADABOUM-VIP",
}

var ResidentDJs = []ResidentDJ{
	{
		ID:            "dj-1",
		Name:          "Sissi Laz",
		Specialty:     "House / Groovy",
		Bio:           "Résidente emblématique de la scène parisienne, Sissi distille un mix solaire entre House classique et pépites modernes.",
		ImageURL:      "https://images.unsplash.com/photo-1594623125724-1067f5e40d7a?auto=format&fit=crop&q=80&w=400",
		SoundcloudURL: "https://soundcloud.com/sissilaz",
	},
	{
		ID:            "dj-2",
		Name:          "Kirollus",
		Specialty:     "Disco / Boogie",
		Bio:           "Le maître du groove rétro. Ses passages au Badaboum sont devenus légendaires pour tous les amoureux du vinyle.",
		ImageURL:      "https://images.unsplash.com/photo-1571266028243-3716f02d2d2e?auto=format&fit=crop&q=80&w=400",
		SoundcloudURL: "https://soundcloud.com/kirollus",
	},
	{
		ID:        "dj-3",
		Name:      "Marc G.",
		Specialty: "Techno / Industrial",
		Bio:       "Explorateur des sonorités sombres et percutantes, Marc G. représente l'aile dure de l'underground parisien.",
		ImageURL:  "https://images.unsplash.com/photo-1598387181032-a3103a2db5b3?auto=format&fit=crop&q=80&w=400",
	},
	{
		ID:        "dj-4",
		Name:      "Léa D.",
		Specialty: "Minimal / Micro",
		Bio:       "Finesse et précision. Léa construit des sets hypnotiques qui font vibrer les afters les plus sélects de la capitale.",
		ImageURL:  "https://images.unsplash.com/photo-1516280440614-37939bbacd81?auto=format&fit=crop&q=80&w=400",
	},
}

var Clubs = []Club{
	{
		ID:            "rexy-paris",
		Name:          "Le Rexy Paris",
		Location:      "9 Rue de la Jussienne, 75002 Paris",
		LogoURL:       "https://images.unsplash.com/photo-1574631335431-7787680182ce?auto=format&fit=crop&q=80&w=400",
		SoundcloudURL: "https://soundcloud.com/sissilaz/girly-groove",
		InstagramURL:  "https://www.instagram.com/rexy_paris/",
		FacebookURL:   "https://www.facebook.com/rexyparisofficiel?locale=fr_FR",
		Description:   "A legendary subterranean club in the heart of Paris, known for its intimate atmosphere and cutting-edge electronic sounds.",
		Tags:          []string{"Techno", "House", "Intimate"},
	},
	{
		ID:            "badaboum-paris",
		Name:          "Badaboum Paris",
		Location:      "2 bis Rue des Taillandiers, 75011 Paris",
		LogoURL:       "https://images.unsplash.com/photo-1514525253361-bee8a48740d7?auto=format&fit=crop&q=80&w=400",
		SoundcloudURL: "https://soundcloud.com/kirollus/6hr-live-set-disco-boogie-house-live-from-badaboum-paris-1",
		InstagramURL:  "https://www.instagram.com/badaboum_paris/",
		FacebookURL:   "https://www.facebook.com/lebadaboum/",
		Description:   "An iconic venue combining a concert hall, a cocktail bar, and a club. Famous for its disco and house vibes.",
		Tags:          []string{"Disco", "House", "Cocktails"},
	},
	{
		ID:            "concrete-paris",
		Name:          "Concrete (Dehors Brute)",
		Location:      "Paris, France",
		LogoURL:       "https://images.unsplash.com/photo-1571266028243-3716f02d2d2e?auto=format&fit=crop&q=80&w=400",
		SoundcloudURL: "https://soundcloud.com/marceldettmann/live-at-concrete-paris",
		InstagramURL:  "https://www.instagram.com/concrete.paris/",
		FacebookURL:   "https://www.facebook.com/ConcreteParis/",
		Description:   "A cornerstone of Parisian techno, known for its boat-party origins and influence on the European scene.",
		Tags:          []string{"Minimal", "Techno", "Boat"},
	},
	{
		ID:            "djoon-paris",
		Name:          "Djoon",
		Location:      "22 Bd Vincent Auriol, 75013 Paris",
		LogoURL:       "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?auto=format&fit=crop&q=80&w=400",
		SoundcloudURL: "https://soundcloud.com/djoon/djoon-podcast-083-osunlade",
		InstagramURL:  "https://www.instagram.com/djoonclub/",
		FacebookURL:   "https://www.facebook.com/djoonclub/",
		Description:   "The soul of house music in Paris. A place where Afro-house and soulful beats meet a passionate crowd.",
		Tags:          []string{"Soulful House", "Afro", "Warm"},
	},
}

func initialPosts() []Post {
	return []Post{
		{
			ID:           "p1",
			Author:       "Alex_Techno",
			Kind:         "photo",
			MediaURL:     "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?auto=format&fit=crop&q=80&w=800",
			Caption:      "Lumières incroyables hier soir au Rexy ! ✨",
			Likes:        42,
			Timestamp:    "Il y a 2h",
			IsMemberPost: true,
			Comments: []Comment{
				{ID: "c1", Author: "Léa", Text: "C'était le feu ! 🔥", Timestamp: "Il y a 1h"},
			},
		},
		{
			ID:           "p2",
			Author:       "DiscoQueen",
			Kind:         "video",
			MediaURL:     "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?auto=format&fit=crop&q=80&w=800",
			Caption:      "Le set de Kirollus au Badaboum était magique 💃",
			Likes:        128,
			Timestamp:    "Il y a 5h",
			IsMemberPost: true,
			Comments:     []Comment{},
		},
	}
}

var scheduleTitles = []string{
	"Midnight Techno", "Deep Underground", "Afterhours Minimal", "Night Groove", "Moonlight Beats",
	"Sunrise Ambient", "Morning Minimal", "Early Bird House", "Breakfast Tech", "Morning Pulse",
	"Office Groove", "Midday Minimal", "Lunch Beat", "Afternoon Tech", "Daily Selection",
	"Workday House", "Sunset Warm-up", "Cocktail Groove", "Evening Selection", "Peak Time Intro",
	"Mainstage Session", "Techno Peak", "Clubbing Night", "Midnight Special",
}

var scheduleDetails = []string{
	"Le son pur de la nuit", "Voyage au coeur du bpm", "Minimalisme hypnotique", "Deep house nocturne", "Vibrations lunaires",
	"Réveil en douceur", "Minimal house matinale", "Progressive morning", "Tech house énergisante", "Le plein de vitamines",
	"Deep house pour bosser", "Rythmes légers et précis", "Le beat du midi", "Tech house dynamique", "Sélection de la rédaction",
	"Fin de journée en musique", "Transition vers la nuit", "House élégante et festive", "Best of Electro Paris", "Montée en puissance",
	"Le son des plus grands clubs", "L'énergie maximale", "Ambiance dancefloor", "Les pépites de minuit",
}
