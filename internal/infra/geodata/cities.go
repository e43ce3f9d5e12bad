package geodata

// cityCoords maps the covered Cavite cities and municipalities to their
// coordinates. The set is fixed; distances are derived from it at startup.
var cityCoords = map[string]coordinate{
	"Amadeo":                  {14.1698511, 120.9217943},
	"Imus":                    {14.4290116, 120.9365911},
	"General Trias":           {14.3860130, 120.8802597},
	"Dasmariñas":              {14.3270819, 120.9370871},
	"Bacoor":                  {14.4588160, 120.9595790},
	"Carmona":                 {14.3134763, 121.0573969},
	"Kawit":                   {14.4442564, 120.9035435},
	"Noveleta":                {14.4278394, 120.8808454},
	"Silang":                  {14.2236240, 120.9741497},
	"Naic":                    {14.3191837, 120.7642540},
	"Tanza":                   {14.4006750, 120.8572845},
	"Alfonso":                 {14.1380464, 120.8554205},
	"Indang":                  {14.1958306, 120.8784148},
	"Rosario":                 {14.4166891, 120.8552629},
	"Trece Martires":          {14.2811668, 120.8702367},
	"General Mariano Alvarez": {14.2954628, 121.0070814},
	"Cavite City":             {14.4820919, 120.9089190},
	"Tagaytay":                {14.1032297, 120.9317903},
	"Mendez":                  {14.1300751, 120.9051427},
	"Ternate":                 {14.2863405, 120.7161314},
	"Maragondon":              {14.2741589, 120.7350728},
	"Magallanes":              {14.1874692, 120.7573248},
}

type coordinate struct {
	Lat float64
	Lng float64
}
