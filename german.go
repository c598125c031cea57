package polarity

import "strings"

// negationStopWords is the German stop list that keeps negation particles
// such as "nicht", "kein" and "nie".
var negationStopWords = []string{
	"denn", "daß", "muss", "allem", "allen", "dem", "den", "aller", "alles",
	"der", "des", "über", "ihnen", "andere", "meinem", "durch", "manchem",
	"manchen", "anderm", "andern", "meines", "am", "an", "anderr", "anders",
	"doch", "welches", "jene", "denselben", "wollen", "meinen", "wirst",
	"dasselbe", "ein", "hatte", "sollte", "seine", "unter", "mancher", "mir",
	"mit", "so", "während", "anderem", "anderen", "meiner", "dieselben",
	"anderes", "einen", "einer", "dazu", "musste", "jenem", "jenen", "da",
	"derer", "manches", "jener", "jenes", "weil", "desselben", "wird", "die",
	"bei", "hab", "ist", "sind", "dir", "deinem", "deinen", "du", "zum",
	"deiner", "deines", "zur", "um", "viel", "hat", "könnte", "welche",
	"unse", "derselbe", "er", "es", "das", "gewesen", "aber", "auf", "ich",
	"habe", "damit", "mein", "eines", "aus", "einigen", "wieder", "ander",
	"indem", "zwar", "einiges", "einmal", "sie", "diese", "dann", "vom",
	"von", "wo", "vor", "soll", "sehr", "eure", "alle", "werde", "weiter",
	"was", "und", "würde", "jedem", "jeden", "oder", "jeder", "sein", "uns",
	"jede", "demselben", "mich", "haben", "manche", "bin", "dessen", "bis",
	"wenn", "sondern", "solche", "euch", "jedes", "ihrem", "ihren", "ihrer",
	"ihres", "unsem", "unsen", "im", "in", "unser", "unses", "ihm", "ihn",
	"wollte", "ihr", "wir", "anderer", "sich", "dort", "würden", "derselben",
	"welcher", "meine", "warst", "ohne", "für", "nach", "weg", "man", "eine",
	"euer", "solchen", "machen", "solches", "dein", "hier", "wie", "sonst",
	"hinter", "zwischen", "nun", "nur", "hin", "einem", "einigem", "waren",
	"ihre", "jetzt", "einiger", "kann", "auch", "war", "dieselbe", "werden",
	"einig", "hatten", "dieser", "als", "selbst", "dich", "einige", "können",
	"gegen", "seinem", "deine", "solchem", "also", "solcher", "zu", "will",
	"ob", "welchem", "welchen", "etwas", "diesem", "diesen", "seinen",
	"dieses", "seiner", "seines", "noch", "eurem", "euren", "ins", "eurer",
	"eures", "dies", "bist",
}

// negationParticles are removed by the ordinary stop list only.
var negationParticles = []string{
	"nicht", "kein", "keine", "keinem", "keinen", "keiner", "keines",
}

// germanStopWords is the ordinary German stop list.
var germanStopWords = append(append([]string{}, negationStopWords...), negationParticles...)

var umlautFolder = strings.NewReplacer(
	"ß", "ss",
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
)

// foldGerman rewrites sharp s and umlauts of a lowercased word.
func foldGerman(word string) string {
	return umlautFolder.Replace(word)
}
