package domain

// Account is an entry of /portfolio/accounts.
type Account struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	AccountVan    string `json:"accountVan"`
	AccountTitle  string `json:"accountTitle"`
	DisplayName   string `json:"displayName"`
	AccountAlias  string `json:"accountAlias"`
	AccountStatus int64  `json:"accountStatus"`
	Currency      string `json:"currency"`
	Type          string `json:"type"`
	TradingType   string `json:"tradingType"`
}

// Position is an entry of /portfolio/{accountId}/positions/{page}.
type Position struct {
	AcctID        string   `json:"acctId"`
	Conid         int64    `json:"conid"`
	ContractDesc  string   `json:"contractDesc"`
	Position      float64  `json:"position"`
	MktPrice      float64  `json:"mktPrice"`
	MktValue      float64  `json:"mktValue"`
	Currency      string   `json:"currency"`
	AvgCost       float64  `json:"avgCost"`
	AvgPrice      float64  `json:"avgPrice"`
	RealizedPnl   float64  `json:"realizedPnl"`
	UnrealizedPnl float64  `json:"unrealizedPnl"`
	Exchs         string   `json:"exchs"`
	Expiry        string   `json:"expiry"`
	PutOrCall     string   `json:"putOrCall"`
	Multiplier    float64  `json:"multiplier"`
	Strike        float64  `json:"strike"`
	ExerciseStyle string   `json:"exerciseStyle"`
	Ticker        string   `json:"ticker"`
	UndConid      int64    `json:"undConid"`
	Model         string   `json:"model"`
}

// AccountSummary is the payload of /iserver/account.
type AccountSummary struct {
	ID             string `json:"id"`
	AccountID      string `json:"accountId"`
	AccountVan     string `json:"accountVan"`
	AccountTitle   string `json:"accountTitle"`
	AccountAlias   string `json:"accountAlias"`
	AccountStatus  int64  `json:"accountStatus"`
	Currency       string `json:"currency"`
	Type           string `json:"type"`
	TradingType    string `json:"tradingType"`
	Faclient       bool   `json:"faclient"`
	ClearingStatus string `json:"clearingStatus"`
	Covestor       bool   `json:"covestor"`
	Desc           string `json:"desc"`
}

// AccountInfo is the caller-facing view of an account.
type AccountInfo struct {
	AccountID   string
	Title       string
	Alias       string
	Currency    string
	Type        string
	TradingType string
	Clearing    string
	Values      map[string]string
}

// Security types derived for positions.
const (
	SecTypeStock  = "STK"
	SecTypeOption = "OPT"
	SecTypeFuture = "FUT"
)

// PositionInfo is the caller-facing view of a position.
type PositionInfo struct {
	AccountID     string
	ConID         int64
	Symbol        string
	Description   string
	SecType       string
	Quantity      float64
	MarketPrice   float64
	MarketValue   float64
	AverageCost   float64
	RealizedPnL   float64
	UnrealizedPnL float64
	Currency      string
	Expiry        string
	Right         string
	Strike        float64
	Multiplier    float64
}

// PositionFilter decides whether a position is left out of listings.
type PositionFilter interface {
	ShouldExclude(symbol string) bool
}
