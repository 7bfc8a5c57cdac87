package extract

// Static lookup tables for ticker disambiguation.
// ⭐ SSOT: 제외어/알려진 티커 사전은 여기서만 정의
//
// Both sets are read-only after init and safe for concurrent use.
// knownTickers overrides exclusionWords and the min-length rule, so a
// symbol may deliberately appear in both sets (META, COST, LOW, ALL).

// exclusionWords are uppercase runs that show up in transcripts for
// emphasis but are almost never ticker mentions: common English words,
// finance jargon, currency codes and chat filler.
var exclusionWords = map[string]bool{
	// common English words
	"A": true, "I": true, "AN": true, "AS": true, "AT": true, "BE": true,
	"BY": true, "DO": true, "GO": true, "HE": true, "IF": true, "IN": true,
	"IS": true, "IT": true, "ME": true, "MY": true, "NO": true, "OF": true,
	"ON": true, "OR": true, "SO": true, "TO": true, "UP": true, "US": true,
	"WE": true,
	"ALL": true, "AND": true, "ANY": true, "ARE": true, "BAD": true,
	"BIG": true, "BUT": true, "CAN": true, "DAY": true, "DID": true,
	"END": true, "FAR": true, "FEW": true, "FOR": true, "GET": true,
	"GOT": true, "HAS": true, "HER": true, "HIM": true, "HIS": true,
	"HOW": true, "ITS": true, "LET": true, "LOT": true, "LOW": true,
	"MAN": true, "MAY": true, "NEW": true, "NOT": true, "NOW": true,
	"OFF": true, "OLD": true, "ONE": true, "OUR": true, "OUT": true,
	"OWN": true, "PUT": true, "RUN": true, "SAY": true, "SEE": true,
	"SHE": true, "THE": true, "TOO": true, "TOP": true, "TWO": true,
	"USE": true, "WAS": true, "WAY": true, "WHO": true, "WHY": true,
	"YES": true, "YET": true, "YOU": true,
	"ALSO": true, "BACK": true, "BEEN": true, "BEST": true, "BOTH": true,
	"COME": true, "DOES": true, "DOWN": true, "EACH": true, "EVEN": true,
	"EVER": true, "FREE": true, "FROM": true, "GOOD": true, "HAVE": true,
	"HERE": true, "HIGH": true, "INTO": true, "JUST": true, "KEEP": true,
	"KNOW": true, "LAST": true, "LIKE": true, "LIVE": true, "LOOK": true,
	"MAKE": true, "MANY": true, "MORE": true, "MOST": true, "MUCH": true,
	"MUST": true, "NEED": true, "NEXT": true, "ONLY": true, "OPEN": true,
	"OVER": true, "REAL": true, "SAME": true, "SOME": true, "SUCH": true,
	"TAKE": true, "THAN": true, "THAT": true, "THEM": true, "THEN": true,
	"THEY": true, "THIS": true, "TIME": true, "VERY": true, "WANT": true,
	"WEEK": true, "WELL": true, "WERE": true, "WHAT": true, "WHEN": true,
	"WILL": true, "WITH": true, "YEAR": true, "YOUR": true,
	"ABOUT": true, "AFTER": true, "AGAIN": true, "COULD": true,
	"EVERY": true, "FIRST": true, "GREAT": true, "GOING": true,
	"MONEY": true, "NEVER": true, "OTHER": true, "RIGHT": true,
	"SINCE": true, "STILL": true, "THEIR": true, "THERE": true,
	"THESE": true, "THINK": true, "THOSE": true, "TODAY": true,
	"WHERE": true, "WHICH": true, "WHILE": true, "WORLD": true,
	"WOULD": true,

	// finance jargon
	"BUY": true, "SELL": true, "HOLD": true, "CALL": true, "PUTS": true,
	"BULL": true, "BEAR": true, "CASH": true, "DEBT": true, "LOAN": true,
	"RISK": true, "GAIN": true, "LOSS": true, "BANK": true, "FUND": true,
	"RATE": true, "YIELD": true, "PRICE": true, "CHART": true,
	"TRADE": true, "STOCK": true, "SHARE": true, "INDEX": true,
	"CEO": true, "CFO": true, "COO": true, "CTO": true, "IPO": true,
	"ETF": true, "GDP": true, "CPI": true, "SEC": true, "FED": true,
	"IRS": true, "EPS": true, "ROI": true, "ROE": true, "YOY": true,
	"QOQ": true, "ATH": true, "NYSE": true, "FOMO": true, "YOLO": true,
	"HODL": true, "EOD": true, "AH": true, "PM": true, "AM": true,
	"PE": true, "FY": true, "DD": true, "PT": true,

	// currency codes
	"USD": true, "EUR": true, "GBP": true, "JPY": true, "CNY": true,
	"KRW": true, "CAD": true, "AUD": true, "CHF": true, "INR": true,
	"BTC": true, "ETH": true,

	// filler and chat shorthand
	"OK": true, "TV": true, "USA": true, "UK": true, "EU": true,
	"LOL": true, "OMG": true, "BTW": true, "IMO": true, "FYI": true,
	"ASAP": true, "FAQ": true, "DIY": true, "NEWS": true, "VIDEO": true,
	"EST": true, "PST": true, "UTC": true, "GMT": true,
}

// knownTickers are curated real-world symbols always accepted when
// matched: single-letter tickers and symbols that collide with plain
// English words depend on this override.
var knownTickers = map[string]bool{
	// single letters (a bare letter outside this set is always rejected)
	"V": true, "C": true, "F": true, "T": true, "O": true, "K": true,
	"X": true,

	// mega cap tech
	"AAPL": true, "MSFT": true, "GOOG": true, "GOOGL": true, "AMZN": true,
	"META": true, "TSLA": true, "NVDA": true, "NFLX": true, "AMD": true,
	"INTC": true, "IBM": true, "ORCL": true, "CRM": true, "ADBE": true,
	"CSCO": true, "QCOM": true, "TXN": true, "AVGO": true, "MU": true,
	"TSM": true, "ASML": true, "ARM": true, "SMCI": true,

	// software / internet
	"PYPL": true, "SHOP": true, "UBER": true, "LYFT": true, "ABNB": true,
	"COIN": true, "HOOD": true, "PLTR": true, "SNOW": true, "NET": true,
	"CRWD": true, "ZS": true, "DDOG": true, "MDB": true, "OKTA": true,
	"TWLO": true, "ROKU": true, "ZM": true, "DOCU": true, "SPOT": true,
	"PINS": true, "SNAP": true, "ETSY": true, "EBAY": true, "SQ": true,
	"U": true, "RBLX": true, "DKNG": true, "SOFI": true,

	// international
	"BABA": true, "JD": true, "PDD": true, "NIO": true, "XPEV": true,
	"LI": true, "TM": true, "SONY": true, "SAP": true,

	// autos / industrials
	"GM": true, "RIVN": true, "LCID": true, "BA": true, "CAT": true,
	"DE": true, "GE": true, "HON": true, "MMM": true, "LMT": true,
	"RTX": true, "NOC": true, "UPS": true, "FDX": true,

	// financials
	"MA": true, "AXP": true, "BAC": true, "JPM": true, "WFC": true,
	"GS": true, "MS": true, "SCHW": true, "BLK": true, "BX": true,

	// consumer
	"KO": true, "PEP": true, "MCD": true, "SBUX": true, "NKE": true,
	"LULU": true, "TGT": true, "WMT": true, "COST": true, "HD": true,
	"LOW": true, "DIS": true, "CMCSA": true, "VZ": true, "TMUS": true,
	"CMG": true, "DPZ": true, "KHC": true, "PG": true,

	// healthcare
	"PFE": true, "JNJ": true, "MRK": true, "ABBV": true, "LLY": true,
	"UNH": true, "CVS": true, "BMY": true, "AMGN": true, "GILD": true,
	"MRNA": true, "BNTX": true, "ABT": true, "ISRG": true,

	// energy
	"XOM": true, "CVX": true, "COP": true, "OXY": true, "SLB": true,
	"ENPH": true, "FSLR": true,

	// airlines / travel
	"DAL": true, "UAL": true, "AAL": true, "LUV": true, "CCL": true,
	"RCL": true, "NCLH": true, "MAR": true,

	// popular funds
	"SPY": true, "QQQ": true, "VOO": true, "VTI": true, "IWM": true,
	"DIA": true, "ARKK": true, "GLD": true, "SLV": true, "TLT": true,
}

// IsKnownTicker reports membership in the curated known-ticker set
func IsKnownTicker(symbol string) bool {
	return knownTickers[symbol]
}

// IsExcluded reports membership in the exclusion set
func IsExcluded(symbol string) bool {
	return exclusionWords[symbol]
}
