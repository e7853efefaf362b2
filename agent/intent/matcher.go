// Package intent is the deterministic fallback strategy: a keyword and
// pattern matcher that maps a raw utterance onto tool invocations without a
// reasoning service. It handles the same bilingual phrasings the voice
// frontend produces most often.
package intent

import (
	"fmt"
	"regexp"
	"strings"

	bridgex "github.com/ordervoice/kiosk-agent/agent/bridge"
	cartx "github.com/ordervoice/kiosk-agent/agent/cart"
	toolx "github.com/ordervoice/kiosk-agent/agent/tool"
)

// popularSentinel routes "recommend me something" phrasings to the curated
// recommendation branch instead of a product lookup.
const popularSentinel = "popular"

// keyword order matters: the first matching term wins, so broader terms
// ("beef") sit after the dishes they would otherwise shadow.
type keyword struct {
	term string
	id   string
}

var keywords = []keyword{
	{"general tso", "general-tsos"},
	{"kung pao", "kung-pao-chicken"},
	{"宫保鸡丁", "kung-pao-chicken"},
	{"左宗棠", "general-tsos"},
	{"orange chicken", "orange-chicken"},
	{"陈皮鸡", "orange-chicken"},
	{"fried rice", "fried-rice"},
	{"炒饭", "fried-rice"},
	{"lo mein", "shrimp-lo-mein"},
	{"捞面", "shrimp-lo-mein"},
	{"pad thai", "pad-thai"},
	{"spring roll", "spring-rolls"},
	{"春卷", "spring-rolls"},
	{"wonton", "wonton-soup"},
	{"馄饨", "wonton-soup"},
	{"hot and sour", "hot-sour-soup"},
	{"酸辣汤", "hot-sour-soup"},
	{"miso", "miso-soup"},
	{"味噌", "miso-soup"},
	{"beef", "beef-broccoli"},
	{"牛肉", "beef-broccoli"},
	{"tofu", "mapo-tofu"},
	{"麻婆豆腐", "mapo-tofu"},
	{"duck", "peking-duck"},
	{"烤鸭", "peking-duck"},
	{"mango", "mango-sticky-rice"},
	{"芒果", "mango-sticky-rice"},
	{"crab rangoon", "crab-rangoon"},
	{"蟹角", "crab-rangoon"},
	{"sweet and sour", "sweet-sour-pork"},
	{"咕噜肉", "sweet-sour-pork"},
	{"recommend", popularSentinel},
	{"suggest", popularSentinel},
	{"推荐", popularSentinel},
}

var addPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)i'?ll have`),
	regexp.MustCompile(`(?i)i want`),
	regexp.MustCompile(`(?i)i'?d like`),
	regexp.MustCompile(`(?i)add`),
	regexp.MustCompile(`(?i)order`),
	regexp.MustCompile(`(?i)give me`),
	regexp.MustCompile(`我要`),
	regexp.MustCompile(`来一个`),
	regexp.MustCompile(`来一份`),
}

const (
	replyWelcome = "Welcome to our restaurant! 欢迎光临！Here are some of our popular dishes. " +
		"We have appetizers, soups, main courses, and desserts. What catches your eye?"
	replyPopular = "Great question! Our most popular dishes are General Tso's Chicken (左宗棠鸡 $14.99), " +
		"Kung Pao Chicken (宫保鸡丁 $15.99), and Orange Chicken (陈皮鸡 $14.49). " +
		"The Kung Pao is my personal favorite — would you like to try it? 🌶️"
	replyFound     = "Here's what I found! Would you like to add it to your order?"
	replyEmptyCart = "Your cart is empty! Would you like to see our menu? 您的购物车是空的，要看看菜单吗？"
	replyDefault   = "I'd be happy to help! You can ask about our menu, order dishes by name, or ask for " +
		"recommendations. Try saying something like \"I'll have the General Tso's Chicken\" or " +
		"\"What do you recommend?\" 有什么可以帮您的吗？"
)

type Matcher struct {
	exec *toolx.Executor
}

func New(exec *toolx.Executor) *Matcher {
	return &Matcher{exec: exec}
}

// Handle resolves one utterance against the cart. Cart totals in the
// response envelope are the caller's job; Handle only produces the reply
// text and any display cards.
func (m *Matcher) Handle(message string, c *cartx.Cart) (string, []bridgex.Card) {
	msg := strings.ToLower(message)
	var cards []bridgex.Card

	if strings.Contains(msg, "menu") ||
		strings.Contains(msg, "what do you have") ||
		strings.Contains(msg, "browse") {
		res := m.exec.Execute(toolx.OpSearchProduct, toolx.Input{Query: ""}, c)
		cards = appendCard(cards, bridgex.Process(res, bridgex.SourceUserQuery))
		return replyWelcome, cards
	}

	matchedID := ""
	for _, kw := range keywords {
		if strings.Contains(msg, kw.term) {
			matchedID = kw.id
			break
		}
	}

	ordering := false
	for _, p := range addPatterns {
		if p.MatchString(message) {
			ordering = true
			break
		}
	}

	if matchedID == popularSentinel {
		res := m.exec.Execute(toolx.OpSearchProduct, toolx.Input{Query: "chicken"}, c)
		cards = appendCard(cards, bridgex.Process(res, bridgex.SourceAIRecommendation))
		return replyPopular, cards
	}

	if matchedID != "" && ordering {
		added := m.exec.Execute(toolx.OpAddToCart, toolx.Input{ProductID: matchedID, Quantity: 1}, c)

		search := m.exec.Execute(toolx.OpSearchProduct, toolx.Input{Query: matchedID}, c)
		cards = appendCard(cards, bridgex.Process(search, bridgex.SourceUserQuery))

		out, ok := added.Payload.(toolx.AddOutput)
		if !ok {
			return replyDefault, cards
		}

		recText := ""
		if len(out.Recommendations) > 0 {
			rec := out.Recommendations[0]
			recText = fmt.Sprintf(" Would you also like %s (%s) for $%v? It pairs great with your order!",
				rec.Name, rec.NameZh, rec.Price)
		}
		return fmt.Sprintf("Added %s (%s) to your order! 👍%s", out.Item.Name, out.Item.NameZh, recText), cards
	}

	if matchedID != "" {
		res := m.exec.Execute(toolx.OpSearchProduct, toolx.Input{Query: matchedID}, c)
		cards = appendCard(cards, bridgex.Process(res, bridgex.SourceUserQuery))
		return replyFound, cards
	}

	if strings.Contains(msg, "total") ||
		strings.Contains(msg, "checkout") ||
		strings.Contains(msg, "check out") ||
		strings.Contains(msg, "结账") ||
		strings.Contains(msg, "多少钱") {
		res := m.exec.Execute(toolx.OpCalculateOrderTotal, toolx.Input{}, c)
		cards = appendCard(cards, bridgex.Process(res, bridgex.SourceUserQuery))

		out, ok := res.Payload.(toolx.TotalOutput)
		if !ok || out.ItemCount == 0 {
			return replyEmptyCart, cards
		}
		return fmt.Sprintf("Here's your order summary! Your total is $%v. Would you like to place the order? 🧾",
			out.Total), cards
	}

	return replyDefault, cards
}

func appendCard(cards []bridgex.Card, card *bridgex.Card) []bridgex.Card {
	if card == nil {
		return cards
	}
	return append(cards, *card)
}
