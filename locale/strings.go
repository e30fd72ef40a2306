package locale

// Strings is one translation table; every view reads its labels from here
type Strings struct {
	TotalPoints     string
	Obsidian        string
	Energy          string
	OutOfEnergy     string
	PassiveIncome   string
	Level           string
	Upgrades        string
	Tasks           string
	EriDrop         string
	Squad           string
	Home            string
	InviteFriends   string
	InviteDesc      string
	InviteBtn       string
	InviteCopied    string
	InviteManual    string
	DailyTasks      string
	Claim           string
	Play            string
	Claimed         string
	EriDropTitle    string
	EriDropSlogan   string
	EriDropDesc     string
	EriDropProgress string
	Users           string
	Milestone       string
	SwitchLang      string
	LangBadge       string
	ConnectWallet   string
	Connecting      string
	WalletConnected string
	Shop            string
	Buy             string
	Boost           string
	Points          string
	Mint            string
	MintReady       string
	PointsToObs     string
	CoreStability   string
	ConfirmPayment  string
	Price           string
	SendTo          string
	PayWithTon      string
	Processing      string
	Cancel          string
	Owned           string
	Help            string
}

var arabic = Strings{
	TotalPoints:     "نقاط Abcedion",
	Obsidian:        "عملة أوبسيديان",
	Energy:          "الطاقة",
	OutOfEnergy:     "نفدت الطاقة!",
	PassiveIncome:   "دخل سلبي/ثانية",
	Level:           "مستوى",
	Upgrades:        "الترقيات",
	Tasks:           "المهام",
	EriDrop:         "EriDrop",
	Squad:           "الفريق",
	Home:            "الرئيسية",
	InviteFriends:   "دعوة الأصدقاء",
	InviteDesc:      "أحضر فريق الخنازير الخاص بك! اكسب +10% من أرباحهم للأبد.",
	InviteBtn:       "دعوة",
	InviteCopied:    "تم نسخ رابط الدعوة",
	InviteManual:    "رابط الدعوة:",
	DailyTasks:      "المهام اليومية",
	Claim:           "مطالبة",
	Play:            "لعب",
	Claimed:         "تم",
	EriDropTitle:    "مشروع EriDrop",
	EriDropSlogan:   "الخيار الذكي هو حظ سعيد",
	EriDropDesc:     "سيتم تحرير EriDrop بمجرد وصولنا إلى 10 ملايين مستخدم.",
	EriDropProgress: "التقدم نحو الإطلاق (المستخدمين)",
	Users:           "مستخدم",
	Milestone:       "هدف المجتمع",
	SwitchLang:      "English",
	LangBadge:       "EN",
	ConnectWallet:   "ربط المحفظة",
	Connecting:      "...",
	WalletConnected: "متصل",
	Shop:            "المتجر",
	Buy:             "شراء",
	Boost:           "تعزيز",
	Points:          "نقطة",
	Mint:            "سك (Mint)",
	MintReady:       "جاهز للسك!",
	PointsToObs:     "10,000 نقطة = 1 أوبسيديان",
	CoreStability:   "استقرار النواة",
	ConfirmPayment:  "تأكيد الدفع",
	Price:           "السعر",
	SendTo:          "إرسال إلى:",
	PayWithTon:      "ادفع بواسطة TON",
	Processing:      "جارٍ المعالجة...",
	Cancel:          "إلغاء",
	Owned:           "مملوك",
	Help:            "مسافة: نقر  1-6: تبويب  m: سك  w: محفظة  l: لغة  s: صوت  q: خروج",
}

var english = Strings{
	TotalPoints:     "Abcedion Points",
	Obsidian:        "Obsidian Currency",
	Energy:          "Energy",
	OutOfEnergy:     "Out of Energy!",
	PassiveIncome:   "Passive/Sec",
	Level:           "Level",
	Upgrades:        "Upgrades",
	Tasks:           "Tasks",
	EriDrop:         "EriDrop",
	Squad:           "Squad",
	Home:            "Home",
	InviteFriends:   "Invite Friends",
	InviteDesc:      "Bring your piggy squad! Earn +10% of their earnings forever.",
	InviteBtn:       "Invite",
	InviteCopied:    "Invite link copied",
	InviteManual:    "Invite link:",
	DailyTasks:      "Daily Tasks",
	Claim:           "Claim",
	Play:            "Play",
	Claimed:         "Done",
	EriDropTitle:    "EriDrop Project",
	EriDropSlogan:   "The intelligent choice is good luck",
	EriDropDesc:     "EriDrop will be released as soon as we reach 10 million users.",
	EriDropProgress: "Launch Progress (Users)",
	Users:           "Users",
	Milestone:       "Community Milestone",
	SwitchLang:      "العربية",
	LangBadge:       "AR",
	ConnectWallet:   "Connect Wallet",
	Connecting:      "...",
	WalletConnected: "Connected",
	Shop:            "Shop",
	Buy:             "Buy",
	Boost:           "BOOST",
	Points:          "Points",
	Mint:            "Mint",
	MintReady:       "Ready to Mint!",
	PointsToObs:     "10,000 Points = 1 Obsidian",
	CoreStability:   "Core Stability",
	ConfirmPayment:  "Confirm Payment",
	Price:           "Price",
	SendTo:          "Send To:",
	PayWithTon:      "Pay with TON",
	Processing:      "Processing...",
	Cancel:          "Cancel",
	Owned:           "owned",
	Help:            "space: tap  1-6: tabs  m: mint  w: wallet  l: language  s: sound  q: quit",
}
