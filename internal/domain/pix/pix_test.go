package pix_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vitrinehq/vitrine-backend/internal/domain/pix"
)

func Test_CRC16_When_Given_Check_Sequence_Then_Matches_CCITT_FALSE(t *testing.T) {
	// standard check value for CRC-16/CCITT-FALSE
	require.Equal(t, uint16(0x29B1), pix.CRC16([]byte("123456789")))
}

func Test_Encode_When_Given_Key_And_Name_Then_Produces_Valid_BR_Code(t *testing.T) {
	code, err := pix.Payload{
		Key:          "loja@example.com",
		MerchantName: "Padaria do Ze",
		MerchantCity: "CAMPINAS",
	}.Encode()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(code, "000201"))
	require.Contains(t, code, "br.gov.bcb.pix")
	require.Contains(t, code, "loja@example.com")
	require.Contains(t, code, "5802BR")
	require.Contains(t, code, "Padaria do Ze")
	require.Contains(t, code, "CAMPINAS")
	require.True(t, pix.Validate(code))
}

func Test_Encode_When_Amount_Positive_Then_Amount_Field_Present(t *testing.T) {
	code, err := pix.Payload{
		Key:          "11999990000",
		MerchantName: "Lanches",
		Amount:       decimal.NewFromFloat(42.5),
	}.Encode()
	require.NoError(t, err)

	require.Contains(t, code, "540542.50")
	require.True(t, pix.Validate(code))
}

func Test_Encode_When_Amount_Zero_Then_Amount_Field_Omitted(t *testing.T) {
	code, err := pix.Payload{
		Key:          "11999990000",
		MerchantName: "Lanches",
	}.Encode()
	require.NoError(t, err)

	// country code follows currency directly when no amount is set
	require.Contains(t, code, "53039865802BR")
	require.True(t, pix.Validate(code))
}

func Test_Encode_When_Name_Too_Long_Then_Truncated_To_Limit(t *testing.T) {
	code, err := pix.Payload{
		Key:          "chave",
		MerchantName: "Estabelecimento Com Nome Excessivamente Longo",
	}.Encode()
	require.NoError(t, err)

	require.Contains(t, code, "5925Estabelecimento Com Nome ")
	require.True(t, pix.Validate(code))
}

func Test_Encode_When_No_City_Then_Defaults_And_TxID_Is_Stars(t *testing.T) {
	code, err := pix.Payload{Key: "chave", MerchantName: "Loja"}.Encode()
	require.NoError(t, err)

	require.Contains(t, code, "SAO PAULO")
	require.Contains(t, code, "62070503***")
}

func Test_Encode_When_Key_Missing_Then_Error(t *testing.T) {
	_, err := pix.Payload{MerchantName: "Loja"}.Encode()
	require.Error(t, err)
}

func Test_Encode_When_Amount_Negative_Then_Error(t *testing.T) {
	_, err := pix.Payload{
		Key:          "chave",
		MerchantName: "Loja",
		Amount:       decimal.NewFromInt(-1),
	}.Encode()
	require.Error(t, err)
}

func Test_Validate_When_Payload_Tampered_Then_False(t *testing.T) {
	code, err := pix.Payload{Key: "chave", MerchantName: "Loja"}.Encode()
	require.NoError(t, err)

	tampered := strings.Replace(code, "Loja", "Roja", 1)
	require.False(t, pix.Validate(tampered))
	require.False(t, pix.Validate("too short"))
}
