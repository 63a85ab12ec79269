package universe

var nasdaq100 = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "AVGO", "PEP", "COST", "ADBE", "CSCO",
	"TMUS", "AMD", "NFLX", "QCOM", "TXN", "INTC", "AMAT", "HON", "SBUX", "INTU", "MDLZ", "ISRG",
	"ADI", "PYPL", "AMGN", "BKNG", "GILD", "REGN", "VRTX", "LRCX", "MRNA", "ADP", "MU", "PANW",
	"KDP", "ASML", "MNST", "FTNT", "KLAC", "SNPS", "IDXX", "CTAS", "CDNS", "MAR", "CSX", "ATVI",
	"ORLY", "AEP", "MELI", "PCAR", "CARR", "EXC", "XEL", "ADSK", "FAST", "WDAY", "DXCM", "PAYX",
	"PDD", "CRWD", "EBAY", "ODFL", "TEAM", "MRVL", "ABNB", "ZS", "CHTR", "SPLK", "LCID", "OKTA",
	"ROST", "VRSK", "SGEN", "BKR", "CTSH", "BIIB", "EA", "ANSS", "SWKS", "CPRT", "TTWO", "DLTR",
	"CEG", "VRSN", "ALGN",
}

// sp500 mirrors the index membership at the time it was last refreshed.
var sp500 = []string{
	"AAPL", "MSFT", "AMZN", "NVDA", "GOOGL", "GOOG", "META", "BRK.B", "TSLA", "UNH", "LLY", "JPM",
	"XOM", "JNJ", "V", "PG", "AVGO", "MA", "HD", "CVX", "MRK", "ABBV", "PEP", "COST", "ADBE", "KO",
	"CSCO", "WMT", "TMO", "MCD", "PFE", "CRM", "BAC", "ACN", "CMCSA", "LIN", "NFLX", "ABT", "ORCL",
	"DHR", "AMD", "WFC", "DIS", "TXN", "PM", "VZ", "INTU", "COP", "CAT", "AMGN", "NEE", "INTC",
	"UNP", "LOW", "IBM", "BMY", "SPGI", "RTX", "HON", "BA", "UPS", "GE", "QCOM", "AMAT", "NKE",
	"PLD", "NOW", "BKNG", "SBUX", "MS", "ELV", "MDT", "GS", "DE", "ADP", "LMT", "TJX", "T", "BLK",
	"ISRG", "MDLZ", "GILD", "MMC", "AXP", "SYK", "REGN", "VRTX", "ETN", "LRCX", "ADI", "SCHW", "CVS",
	"ZTS", "CI", "CB", "AMT", "SLB", "C", "BDX", "MO", "PGR", "TMUS", "FI", "SO", "EOG", "BSX",
	"CME", "EQIX", "MU", "DUK", "PANW", "PYPL", "AON", "SNPS", "ITW", "KLAC", "LULU", "ICE", "APD",
	"SHW", "CDNS", "CSX", "NOC", "CL", "MPC", "HUM", "FDX", "WM", "MCK", "TGT", "ORLY", "HCA", "FCX",
	"EMR", "PXD", "MMM", "MCO", "ROP", "CMG", "PSX", "MAR", "PH", "APH", "GD", "USB", "NXPI", "AJG",
	"NSC", "PNC", "VLO", "F", "MSI", "GM", "TT", "EW", "CARR", "AZO", "ADSK", "TDG", "ANET", "SRE",
	"ECL", "OXY", "PCAR", "ADM", "MNST", "KMB", "PSA", "CCI", "CHTR", "MCHP", "MSCI", "CTAS", "WMB",
	"AIG", "STZ", "HES", "NUE", "ROST", "AFL", "KVUE", "AEP", "IDXX", "D", "TEL", "JCI", "MET",
	"GIS", "IQV", "EXC", "WELL", "DXCM", "HLT", "ON", "COF", "PAYX", "TFC", "BIIB", "O", "FTNT",
	"DOW", "TRV", "DLR", "MRNA", "CPRT", "ODFL", "DHI", "YUM", "SPG", "CTSH", "AME", "BKR", "SYY",
	"A", "CTVA", "CNC", "EL", "AMP", "CEG", "HAL", "OTIS", "ROK", "PRU", "DD", "KMI", "VRSK", "LHX",
	"DG", "FIS", "CMI", "CSGP", "FAST", "PPG", "GPN", "GWW", "HSY", "BK", "XEL", "DVN", "EA", "NEM",
	"ED", "URI", "VICI", "PEG", "KR", "RSG", "LEN", "PWR", "WST", "COR", "OKE", "VMC", "KDP", "WBD",
	"HIG", "EFX", "MTD", "STT", "AVB", "KEYS", "ZBH", "RMD", "MLM", "FANG", "DLTR", "ALB", "EIX",
	"EXR", "ARE", "SBAC", "TSCO", "CDW", "CNP", "NVR", "HPE", "DGX", "BR", "TRGP", "CFG", "INVH",
	"PPL", "ETR", "TER", "AKAM", "CAG", "VTR", "WDC", "FE", "STE", "ESS", "PAYC", "WAT", "FRC",
	"NDAQ", "LNT", "CMS", "DOV", "MTCH", "HWM", "NDSN", "PKG", "FLT", "WRB", "BALL", "BAX", "CHD",
	"HOLX", "TYL", "AEE", "ATO", "EXPD", "MAA", "CINF", "DRI", "IT", "PHM", "BIO", "BXP", "BRO",
	"VTRS", "CTLT", "ZBRA", "SJM", "VFC", "UDR", "NTRS", "JKHY", "HBAN", "IP", "GRMN", "MKTX", "IPG",
	"TFX", "RHI", "LW", "NCLH", "BBY", "TSN", "COO", "FMC", "KIM", "AIZ", "REG", "OMC", "PFG", "L",
	"XRAY", "HBAN", "WHR", "ALLE", "CMA", "TFX", "BWA", "GL", "HII", "UHS", "NWL", "HAS", "PNR",
	"SEE", "BEN", "IVZ", "APA", "AAL", "ALK", "RL", "NI", "NRG", "FOX", "FOX", "DVA", "MHK", "NWSA",
	"NWS", "TPR", "DXC", "FRT", "AOS", "MOS", "GNRC", "ROL", "JBHT", "PNW", "CBOE", "LNC", "RJF",
	"HST", "WRK", "LW", "CPB", "K", "SNA", "CZR", "NLSN", "HBI", "HRL", "LUMN", "PVH", "LEG", "NWSA",
	"NWS", "FOX", "FOX",
}

var others = []string{
	"GNRC", "PTON", "DDOG", "DOCU", "ENPH", "FANG", "HAL", "TRMB", "MTCH", "T", "AA", "AEM", "AG",
	"ALB", "ALLY", "AMC", "BABA", "BAX", "BITI", "CAVA", "CCI", "CCJ", "CCL", "CHW", "CHWY", "CLF",
	"CLH", "COPX", "CSIQ", "CVNA", "DBA", "DD", "DDD", "DELL", "DIA", "DIG", "DJI", "DJT", "DOTUSDT",
	"DXY", "ELF", "EWZ", "FCG", "FL", "FSLR", "FSLY", "GIS", "GLD", "GOLD", "HPE", "HPQ", "HSY",
	"HUM", "IBKR", "IEP", "ING", "IOO", "IOZ", "IWM", "JBHT", "JBLU", "JETS", "KBH", "KHC", "KRE",
	"KWEB", "LAC", "LEN", "LULU", "LUV", "LVS", "M", "MARA", "MASI", "MBLY", "MED", "MJ", "MMM",
	"MSTR", "MTA", "NDQ", "NCLH", "NET", "NEM", "NUE", "NYCB", "OIH", "ON", "PALL", "PARA", "PBR",
	"QID", "RCL", "RDDT", "REZ", "RH", "RIOT", "RIVN", "RGLD", "RSPD", "RSPR", "SAP", "SCO", "SE",
	"SILJ", "SILVER", "SIVR", "SLB", "SLV", "SYM", "TBT", "TCEHY", "TLRY", "TLT", "TOL", "TREE",
	"TRIP", "TSM", "UAL", "UBER", "UPST", "URA", "URBN", "URNM", "US10Y", "USO", "USOIL", "V", "VDE",
	"VFS", "VGT", "VIX", "VIXY", "VST", "VXX", "VZ", "WBA", "WBD", "WDC", "WFC", "WHR", "WMT", "WSM",
	"WTI", "WYNN", "X", "XAU", "XAUUSD", "XHB", "XLE", "XLF", "XLI", "XOP", "XYZ",
}
