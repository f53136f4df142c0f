package bot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConfirmPurchaseRejectsInvalidRequests(t *testing.T) {
	cases := []struct {
		name string
		req  WebDataRequest
	}{
		{"empty products", WebDataRequest{Products: []Product{}, TotalPrice: 10, QueryID: "x"}},
		{"nil products", WebDataRequest{TotalPrice: 10, QueryID: "x"}},
		{"zero price", WebDataRequest{Products: []Product{{Title: "a"}}, TotalPrice: 0, QueryID: "x"}},
		{"negative price", WebDataRequest{Products: []Product{{Title: "a"}}, TotalPrice: -5, QueryID: "x"}},
		{"missing query id", WebDataRequest{Products: []Product{{Title: "a"}}, TotalPrice: 10}},
		{"untitled product", WebDataRequest{Products: []Product{{}}, TotalPrice: 10, QueryID: "x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			messenger := &fakeMessenger{}
			w := NewWebApp(zap.NewNop(), messenger)

			err := w.ConfirmPurchase(tc.req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Reason)
			assert.Empty(t, messenger.articles, "no query may be answered for invalid input")
		})
	}
}

func TestConfirmPurchaseAnswersQueryOnce(t *testing.T) {
	messenger := &fakeMessenger{}
	w := NewWebApp(zap.NewNop(), messenger)

	err := w.ConfirmPurchase(WebDataRequest{
		Products:   []Product{{Title: "Site"}},
		TotalPrice: 500,
		QueryID:    "q1",
	})

	require.NoError(t, err)
	require.Len(t, messenger.articles, 1)

	article := messenger.articles[0]
	assert.Equal(t, "article", article.Type)
	assert.Equal(t, "q1", article.ID)
	assert.Equal(t, MsgPurchaseTitle, article.Title)
	assert.Contains(t, article.InputMessageContent.MessageText, "Site")
	assert.Contains(t, article.InputMessageContent.MessageText, "500")
}

// A second confirmation for the same query id is a delivery error, not a
// validation error: the request is well-formed, the platform refuses it.
func TestConfirmPurchaseDuplicateQuery(t *testing.T) {
	messenger := &fakeMessenger{}
	w := NewWebApp(zap.NewNop(), messenger)

	req := WebDataRequest{Products: []Product{{Title: "Site"}}, TotalPrice: 500, QueryID: "q1"}

	require.NoError(t, w.ConfirmPurchase(req))
	err := w.ConfirmPurchase(req)

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	var validationErr *ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.Len(t, messenger.articles, 1)
}

func TestConfirmPurchaseDeliveryFailureSurfaced(t *testing.T) {
	messenger := &fakeMessenger{queryErr: errors.New("telegram unreachable")}
	w := NewWebApp(zap.NewNop(), messenger)

	err := w.ConfirmPurchase(WebDataRequest{
		Products:   []Product{{Title: "Site"}},
		TotalPrice: 500,
		QueryID:    "q1",
	})

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
}

func TestConfirmationArticleItemizesProducts(t *testing.T) {
	article := confirmationArticle(WebDataRequest{
		Products:   []Product{{Title: "Лендінг"}, {Title: "Підтримка"}},
		TotalPrice: 600.5,
		QueryID:    "q2",
	})

	assert.Contains(t, article.InputMessageContent.MessageText, "- Лендінг")
	assert.Contains(t, article.InputMessageContent.MessageText, "- Підтримка")
	assert.Contains(t, article.InputMessageContent.MessageText, "600.5")
}
