package entity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversation_Participants(t *testing.T) {
	buyer, seller, stranger := uuid.New(), uuid.New(), uuid.New()
	conv := &Conversation{BuyerID: buyer, SellerID: seller}

	assert.True(t, conv.HasParticipant(buyer))
	assert.True(t, conv.HasParticipant(seller))
	assert.False(t, conv.HasParticipant(stranger))
	assert.Equal(t, seller, conv.Counterpart(buyer))
	assert.Equal(t, buyer, conv.Counterpart(seller))
}

func TestSnippetOf(t *testing.T) {
	assert.Equal(t, "Bonjour", SnippetOf("Bonjour"))

	long := strings.Repeat("é", MaxLastMessageSnippet+10)
	snippet := SnippetOf(long)
	assert.Equal(t, MaxLastMessageSnippet, len([]rune(snippet)))
	assert.True(t, strings.HasSuffix(snippet, "…"))
}

func TestProfile_DisplayName(t *testing.T) {
	shop := "Chez Mama"
	empty := ""

	assert.Equal(t, "Mama Nsimba", (&Profile{FullName: "Mama Nsimba"}).DisplayName())
	assert.Equal(t, "Mama Nsimba", (&Profile{FullName: "Mama Nsimba", ShopName: &empty}).DisplayName())
	assert.Equal(t, shop, (&Profile{FullName: "Mama Nsimba", ShopName: &shop}).DisplayName())
}

func TestEnumsValidity(t *testing.T) {
	assert.True(t, CurrencyCDF.IsValid())
	assert.True(t, CurrencyUSD.IsValid())
	assert.False(t, Currency("EUR").IsValid())

	assert.True(t, ConditionForRepair.IsValid())
	assert.False(t, Condition("broken").IsValid())

	assert.True(t, AccountKindProfessional.IsValid())
	assert.False(t, AccountKind("admin").IsValid())
}
