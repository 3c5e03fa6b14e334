package content

// PassiveIncomeApps returns the app guides on the Passive Income page.
func PassiveIncomeApps() []PassiveIncomeApp {
	return []PassiveIncomeApp{
		{
			ID:             "earnapp",
			Title:          "EarnApp",
			Description:    "Bright Data's app that pays for unused bandwidth on desktops and Raspberry Pi devices.",
			Image:          "/static/images/passive-income/earnapp.svg",
			Earnings:       []string{"$0.10 - $0.50 per device per day", "Payout from $2.50"},
			PaymentMethods: []string{"PayPal", "Amazon gift cards"},
			Platforms:      []string{"Windows", "macOS", "Linux", "Raspberry Pi"},
			SetupSteps: []string{
				"Create an account with the referral link",
				"Install the app on an always-on device",
				"Link the device from the dashboard",
				"Request a payout once the balance passes the minimum",
			},
			ReferralURL: "https://earnapp.com/i/nosytlabs",
			Calculator:  true,
		},
		{
			ID:             "honeygain",
			Title:          "Honeygain",
			Description:    "Bandwidth sharing with a daily lucky pot and content delivery bonus.",
			Image:          "/static/images/passive-income/honeygain.svg",
			Earnings:       []string{"$0.05 - $0.30 per device per day", "Payout from $20"},
			PaymentMethods: []string{"PayPal", "JumpTask (JMPT)"},
			Platforms:      []string{"Windows", "macOS", "Linux", "Android", "iOS"},
			SetupSteps: []string{
				"Sign up and confirm the email",
				"Install on each device on your network",
				"Open the lucky pot daily for bonus credits",
			},
			ReferralURL: "https://r.honeygain.me/NOSYTLABS",
			USDPerGB:    0.10,
			Calculator:  true,
		},
		{
			ID:             "pawns",
			Title:          "Pawns.app",
			Description:    "Bandwidth sharing plus paid surveys in one dashboard.",
			Image:          "/static/images/passive-income/pawns.svg",
			Earnings:       []string{"$0.20 per GB shared", "Payout from $5"},
			PaymentMethods: []string{"PayPal", "Bitcoin", "Gift cards"},
			Platforms:      []string{"Windows", "macOS", "Linux", "Android"},
			SetupSteps: []string{
				"Create an account",
				"Install the desktop or mobile app",
				"Enable bandwidth sharing and take surveys when available",
			},
			ReferralURL:   "https://pawns.app/?r=nosytlabs",
			USDPerGB:      0.20,
			ReferralShare: 0.20,
			Calculator:    true,
		},
		{
			ID:             "brave",
			Title:          "Brave Browser",
			Description:    "Privacy browser that rewards opted-in, private ads with BAT.",
			Image:          "/static/images/passive-income/brave.svg",
			Earnings:       []string{"A few BAT per month with ads enabled"},
			PaymentMethods: []string{"BAT to a connected custodial wallet"},
			Platforms:      []string{"Windows", "macOS", "Linux", "Android", "iOS"},
			SetupSteps: []string{
				"Install Brave",
				"Enable Brave Rewards and private ads",
				"Connect a custodial account to claim BAT",
			},
			ReferralURL: "https://brave.com/nos000",
		},
	}
}

// PassiveIncomeAppByID returns the app guide with the given id.
func PassiveIncomeAppByID(id string) (PassiveIncomeApp, bool) {
	for _, a := range PassiveIncomeApps() {
		if a.ID == id {
			return a, true
		}
	}

	return PassiveIncomeApp{}, false
}
