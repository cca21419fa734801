// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txn

// Body is the decoded transaction envelope: the fields common to every
// transaction plus exactly one operation-specific payload.
type Body struct {
	TransactionID          TransactionID               `json:"transactionID"`
	NodeAccountID          AccountID                   `json:"nodeAccountID"`
	TransactionFee         uint64                      `json:"transactionFee"`
	TransactionValidSecs   int64                       `json:"transactionValidDuration"`
	Memo                   string                      `json:"memo"`
	CryptoTransfer         *CryptoTransferBody         `json:"cryptoTransfer,omitempty"`
	ConsensusSubmitMessage *ConsensusSubmitMessageBody `json:"consensusSubmitMessage,omitempty"`
	UtilPrng               *UtilPrngBody               `json:"utilPrng,omitempty"`
}

// Functionality reports which payload is set. A body with no payload reports
// NONE.
func (b *Body) Functionality() Functionality {
	switch {
	case b.CryptoTransfer != nil:
		return CryptoTransfer
	case b.ConsensusSubmitMessage != nil:
		return ConsensusSubmitMessage
	case b.UtilPrng != nil:
		return UtilPrng
	default:
		return NONE
	}
}

// MemoBytes is the length of the memo in its UTF-8 encoding.
func (b *Body) MemoBytes() uint64 {
	return uint64(len(b.Memo))
}

type AccountAmount struct {
	AccountID AccountID `json:"accountID"`
	Amount    int64     `json:"amount"`
}

type CryptoTransferBody struct {
	Transfers []AccountAmount `json:"transfers"`
}

type ConsensusSubmitMessageBody struct {
	TopicID TopicID `json:"topicID"`
	Message []byte  `json:"message"`
}

type UtilPrngBody struct {
	Range int32 `json:"range"`
}

// Query is the decoded header of a read-only request.
type Query struct {
	ResponseType            ResponseType                  `json:"responseType"`
	CryptoGetAccountBalance *CryptoGetAccountBalanceQuery `json:"cryptoGetAccountBalance,omitempty"`
}

func (q *Query) Functionality() Functionality {
	if q.CryptoGetAccountBalance != nil {
		return CryptoGetAccountBalance
	}
	return NONE
}

type CryptoGetAccountBalanceQuery struct {
	AccountID AccountID `json:"accountID"`
}
