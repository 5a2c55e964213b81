package document

import "strings"

var englishStopwords = `a about above after again against all am an and any are as at be because been
before being below between both but by can could did do does doing down during each few for from
further had has have having he her here hers herself him himself his how i if in into is it its
itself just me more most my myself no nor not now of off on once only or other our ours ourselves
out over own same she should so some such than that the their theirs them themselves then there
these they this those through to too under until up very was we were what when where which while
who whom why will with would you your yours yourself yourselves`

var russianStopwords = `а без более бы был была были было быть в вам вас весь во вот все всего всех
вы где да даже для до его ее ей ею если есть еще же за здесь и из или им их к как какая
какой когда кто ли либо между меня мне много может мы на над надо наш не него нее нет ни них
но ну о об однако он она они оно от очень по под при с со так также такой там те тем то того
тоже той только том ты у уже хотя чего чей чем что чтобы чье чья эта эти это я`

var frenchStopwords = `au aux avec ce ces dans de des du elle en et eux il je la le les leur lui ma
mais me meme mes moi mon ne nos notre nous on ou par pas pour qu que qui sa se ses son sur ta te
tes toi ton tu un une vos votre vous`

var spanishStopwords = `a al algo como con de del el ella ellas ellos en entre era es esta este esto
fue ha la las le les lo los mas me mi mucho muy no nos o para pero por que se sin sobre su sus
tambien te tu un una uno y ya yo`

// stopwordLists maps a language to its whitespace-separated stopword list.
var stopwordLists = map[string]string{
	"english": englishStopwords,
	"russian": russianStopwords,
	"french":  frenchStopwords,
	"spanish": spanishStopwords,
}

// stopwordsFor returns the stopword set for language. Languages without a
// list get an empty set, so nothing is filtered.
func stopwordsFor(language string) map[string]struct{} {
	words := strings.Fields(stopwordLists[language])
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
