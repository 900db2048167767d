package service

import "github.com/Cheertaboi/bookstore-locale-service/internal/models"

var currencies = map[string]models.CurrencyInfo{
	"AED": {Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	"ARS": {Code: "ARS", Symbol: "$", Name: "Argentine Peso"},
	"AUD": {Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	"BDT": {Code: "BDT", Symbol: "৳", Name: "Bangladeshi Taka"},
	"BRL": {Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	"CAD": {Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	"CHF": {Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	"CLP": {Code: "CLP", Symbol: "$", Name: "Chilean Peso"},
	"CNY": {Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	"COP": {Code: "COP", Symbol: "$", Name: "Colombian Peso"},
	"CZK": {Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
	"DKK": {Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	"EGP": {Code: "EGP", Symbol: "E£", Name: "Egyptian Pound"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"HKD": {Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
	"HUF": {Code: "HUF", Symbol: "Ft", Name: "Hungarian Forint"},
	"IDR": {Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	"ILS": {Code: "ILS", Symbol: "₪", Name: "Israeli New Shekel"},
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	"JPY": {Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	"KES": {Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling"},
	"KRW": {Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	"LKR": {Code: "LKR", Symbol: "Rs", Name: "Sri Lankan Rupee"},
	"MXN": {Code: "MXN", Symbol: "MX$", Name: "Mexican Peso"},
	"MYR": {Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	"NGN": {Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	"NOK": {Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	"NPR": {Code: "NPR", Symbol: "Rs", Name: "Nepalese Rupee"},
	"NZD": {Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	"PHP": {Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	"PKR": {Code: "PKR", Symbol: "Rs", Name: "Pakistani Rupee"},
	"PLN": {Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	"RUB": {Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	"SAR": {Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	"SEK": {Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	"SGD": {Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	"THB": {Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	"TRY": {Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
	"TWD": {Code: "TWD", Symbol: "NT$", Name: "New Taiwan Dollar"},
	"UAH": {Code: "UAH", Symbol: "₴", Name: "Ukrainian Hryvnia"},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"VND": {Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	"ZAR": {Code: "ZAR", Symbol: "R", Name: "South African Rand"},
}

var countryCurrency = map[string]string{
	"AE": "AED",
	"AR": "ARS",
	"AT": "EUR",
	"AU": "AUD",
	"BD": "BDT",
	"BE": "EUR",
	"BR": "BRL",
	"CA": "CAD",
	"CH": "CHF",
	"CL": "CLP",
	"CN": "CNY",
	"CO": "COP",
	"CZ": "CZK",
	"DE": "EUR",
	"DK": "DKK",
	"EG": "EGP",
	"ES": "EUR",
	"FI": "EUR",
	"FR": "EUR",
	"GB": "GBP",
	"GR": "EUR",
	"HK": "HKD",
	"HU": "HUF",
	"ID": "IDR",
	"IE": "EUR",
	"IL": "ILS",
	"IN": "INR",
	"IT": "EUR",
	"JP": "JPY",
	"KE": "KES",
	"KR": "KRW",
	"LK": "LKR",
	"MX": "MXN",
	"MY": "MYR",
	"NG": "NGN",
	"NL": "EUR",
	"NO": "NOK",
	"NP": "NPR",
	"NZ": "NZD",
	"PH": "PHP",
	"PK": "PKR",
	"PL": "PLN",
	"PT": "EUR",
	"RU": "RUB",
	"SA": "SAR",
	"SE": "SEK",
	"SG": "SGD",
	"TH": "THB",
	"TR": "TRY",
	"TW": "TWD",
	"UA": "UAH",
	"US": "USD",
	"VN": "VND",
	"ZA": "ZAR",
}

// zero-decimal currencies
var currencyDecimals = map[string]int32{
	"CLP": 0,
	"IDR": 0,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
}
