// Package pix builds static BR Code payloads (EMV merchant-presented QR,
// BCB "Manual de Padrões para Iniciação do Pix"): TLV fields with
// length-prefixed values and a CRC-16/CCITT-FALSE trailer. Payloads encode
// here are accepted by banking apps, unlike the fixed string template this
// replaces.
package pix

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	idPayloadFormat        = "00"
	idMerchantAccountInfo  = "26"
	idMerchantCategoryCode = "52"
	idTransactionCurrency  = "53"
	idTransactionAmount    = "54"
	idCountryCode          = "58"
	idMerchantName         = "59"
	idMerchantCity         = "60"
	idAdditionalData       = "62"
	idCRC                  = "63"

	idAccountGUI = "00"
	idAccountKey = "01"
	idTxID       = "05"

	pixGUI = "br.gov.bcb.pix"

	// field limits from the BR Code spec
	maxMerchantName = 25
	maxMerchantCity = 15
	maxTxID         = 25
	maxKey          = 77
)

type Payload struct {
	Key          string
	MerchantName string
	MerchantCity string
	// TxID identifies the charge; "***" means none.
	TxID   string
	Amount decimal.Decimal
}

func (p Payload) Encode() (string, error) {
	if p.Key == "" {
		return "", fmt.Errorf("pix key is required")
	}
	if len(p.Key) > maxKey {
		return "", fmt.Errorf("pix key exceeds %d characters", maxKey)
	}
	if p.MerchantName == "" {
		return "", fmt.Errorf("merchant name is required")
	}
	if p.Amount.IsNegative() {
		return "", fmt.Errorf("amount can't be negative")
	}

	city := p.MerchantCity
	if city == "" {
		city = "SAO PAULO"
	}
	txid := p.TxID
	if txid == "" {
		txid = "***"
	}

	account := tlv(idAccountGUI, pixGUI) + tlv(idAccountKey, p.Key)

	var b strings.Builder
	b.WriteString(tlv(idPayloadFormat, "01"))
	b.WriteString(tlv(idMerchantAccountInfo, account))
	b.WriteString(tlv(idMerchantCategoryCode, "0000"))
	b.WriteString(tlv(idTransactionCurrency, "986"))
	if p.Amount.IsPositive() {
		b.WriteString(tlv(idTransactionAmount, p.Amount.StringFixed(2)))
	}
	b.WriteString(tlv(idCountryCode, "BR"))
	b.WriteString(tlv(idMerchantName, truncate(p.MerchantName, maxMerchantName)))
	b.WriteString(tlv(idMerchantCity, truncate(city, maxMerchantCity)))
	b.WriteString(tlv(idAdditionalData, tlv(idTxID, truncate(txid, maxTxID))))

	// the CRC is computed over the payload including its own id and length
	withCRCHeader := b.String() + idCRC + "04"
	return withCRCHeader + fmt.Sprintf("%04X", CRC16([]byte(withCRCHeader))), nil
}

// Validate recomputes the CRC trailer of an encoded payload.
func Validate(code string) bool {
	if len(code) < 8 {
		return false
	}
	body, tail := code[:len(code)-4], code[len(code)-4:]
	if !strings.HasSuffix(body, idCRC+"04") {
		return false
	}
	return fmt.Sprintf("%04X", CRC16([]byte(body))) == tail
}

func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// CRC16 is CRC-16/CCITT-FALSE: poly 0x1021, init 0xFFFF, no reflection.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
