package menu

// The embedded restaurant menu. Order matters: search results and the
// default browse view preserve it.
var menuItems = []Item{
	// Appetizers
	{
		ID:            "spring-rolls",
		Name:          "Spring Rolls",
		NameZh:        "春卷",
		Description:   "Crispy fried rolls stuffed with vegetables and glass noodles. Served with sweet chili sauce.",
		DescriptionZh: "酥脆炸春卷，内含蔬菜和粉丝，配甜辣酱。",
		Price:         7.99,
		Category:      "Appetizers",
		Image:         "/menu/spring-rolls.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Gluten", "Soy"},
		IsPopular:     true,
		Pairings:      []string{"wonton-soup", "kung-pao-chicken"},
	},
	{
		ID:            "crab-rangoon",
		Name:          "Crab Rangoon",
		NameZh:        "蟹角",
		Description:   "Crispy wonton wrappers filled with cream cheese and crab meat.",
		DescriptionZh: "酥脆馄饨皮包裹奶油芝士和蟹肉。",
		Price:         8.99,
		Category:      "Appetizers",
		Image:         "/menu/crab-rangoon.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Gluten", "Dairy", "Shellfish"},
		IsPopular:     true,
		Pairings:      []string{"hot-sour-soup", "general-tsos"},
	},

	// Soups
	{
		ID:            "wonton-soup",
		Name:          "Wonton Soup",
		NameZh:        "馄饨汤",
		Description:   "Handmade pork and shrimp wontons in a clear savory broth with baby bok choy.",
		DescriptionZh: "手工猪肉虾仁馄饨，清汤配小白菜。",
		Price:         6.99,
		Category:      "Soups",
		Image:         "/menu/wonton-soup.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Gluten", "Shellfish", "Soy"},
		IsPopular:     false,
		Pairings:      []string{"spring-rolls", "fried-rice"},
	},
	{
		ID:            "hot-sour-soup",
		Name:          "Hot and Sour Soup",
		NameZh:        "酸辣汤",
		Description:   "Traditional Sichuan soup with tofu, bamboo shoots, egg, and wood ear mushrooms.",
		DescriptionZh: "传统四川酸辣汤，配豆腐、竹笋、鸡蛋和木耳。",
		Price:         7.49,
		Category:      "Soups",
		Image:         "/menu/hot-sour-soup.jpg",
		SpiceLevel:    2,
		Allergens:     []string{"Gluten", "Egg", "Soy"},
		IsPopular:     true,
		Pairings:      []string{"kung-pao-chicken", "mapo-tofu"},
	},
	{
		ID:            "miso-soup",
		Name:          "Miso Soup",
		NameZh:        "味噌汤",
		Description:   "Light and warming Japanese-style miso broth with tofu and seaweed.",
		DescriptionZh: "清淡温暖的日式味噌汤，配豆腐和海带。",
		Price:         4.99,
		Category:      "Soups",
		Image:         "/menu/miso-soup.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Soy"},
		IsPopular:     false,
		Pairings:      []string{"shrimp-lo-mein", "orange-chicken"},
	},

	// Poultry
	{
		ID:            "general-tsos",
		Name:          "General Tso's Chicken",
		NameZh:        "左宗棠鸡",
		Description:   "Crispy chicken chunks tossed in our signature sweet, savory, and slightly spicy sauce. An American-Chinese classic.",
		DescriptionZh: "酥脆鸡块裹上招牌甜辣酱，经典美式中餐。",
		Price:         14.99,
		Category:      "Poultry",
		Image:         "/menu/general-tsos.jpg",
		SpiceLevel:    1,
		Allergens:     []string{"Gluten", "Soy", "Egg"},
		IsPopular:     true,
		Pairings:      []string{"fried-rice", "spring-rolls", "miso-soup"},
	},
	{
		ID:            "kung-pao-chicken",
		Name:          "Kung Pao Chicken",
		NameZh:        "宫保鸡丁",
		Description:   "Wok-fired chicken with roasted peanuts, dried chili peppers, and vegetables in a savory-spicy sauce.",
		DescriptionZh: "鸡丁与花生、干辣椒和蔬菜爆炒，酱香微辣。",
		Price:         15.99,
		Category:      "Poultry",
		Image:         "/menu/kung-pao-chicken.jpg",
		SpiceLevel:    2,
		Allergens:     []string{"Peanuts", "Soy", "Gluten"},
		IsPopular:     true,
		Pairings:      []string{"fried-rice", "hot-sour-soup", "spring-rolls"},
	},
	{
		ID:            "orange-chicken",
		Name:          "Orange Chicken",
		NameZh:        "陈皮鸡",
		Description:   "Tender chicken battered and fried, glazed with a tangy orange citrus sauce.",
		DescriptionZh: "鸡肉裹浆酥炸，淋上香橙酱汁。",
		Price:         14.49,
		Category:      "Poultry",
		Image:         "/menu/orange-chicken.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Gluten", "Soy", "Egg"},
		IsPopular:     true,
		Pairings:      []string{"fried-rice", "wonton-soup"},
	},
	{
		ID:            "peking-duck",
		Name:          "Peking Duck",
		NameZh:        "北京烤鸭",
		Description:   "Whole roasted duck with crispy skin, served with thin pancakes, scallions, cucumber, and hoisin sauce.",
		DescriptionZh: "整只烤鸭，配薄饼、葱丝、黄瓜和甜面酱。",
		Price:         24.99,
		Category:      "Poultry",
		Image:         "/menu/peking-duck.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Gluten", "Soy"},
		IsPopular:     false,
		Pairings:      []string{"hot-sour-soup", "mapo-tofu"},
	},

	// Beef & Pork
	{
		ID:            "beef-broccoli",
		Name:          "Beef with Broccoli",
		NameZh:        "西兰花牛肉",
		Description:   "Tender sliced beef and fresh broccoli stir-fried in a rich oyster-soy sauce.",
		DescriptionZh: "嫩牛肉片与新鲜西兰花爆炒，淋蚝油酱汁。",
		Price:         15.99,
		Category:      "Beef & Pork",
		Image:         "/menu/beef-broccoli.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Soy", "Gluten"},
		IsPopular:     true,
		Pairings:      []string{"fried-rice", "wonton-soup"},
	},
	{
		ID:            "sweet-sour-pork",
		Name:          "Sweet and Sour Pork",
		NameZh:        "咕噜肉",
		Description:   "Crispy pork pieces with bell peppers and pineapple in a tangy sweet and sour sauce.",
		DescriptionZh: "酥脆猪肉配青椒和菠萝，酸甜酱汁。",
		Price:         14.49,
		Category:      "Beef & Pork",
		Image:         "/menu/sweet-sour-pork.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Gluten", "Soy", "Egg"},
		IsPopular:     false,
		Pairings:      []string{"fried-rice", "spring-rolls"},
	},

	// Noodles & Rice
	{
		ID:            "fried-rice",
		Name:          "Fried Rice",
		NameZh:        "炒饭",
		Description:   "Wok-fried rice with egg, green onions, carrots, and peas. Choice of chicken, shrimp, or vegetable.",
		DescriptionZh: "蛋炒饭配葱花、胡萝卜和豌豆。可选鸡肉、虾仁或素菜。",
		Price:         11.99,
		Category:      "Noodles & Rice",
		Image:         "/menu/fried-rice.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Egg", "Soy", "Gluten"},
		IsPopular:     true,
		Pairings:      []string{"general-tsos", "kung-pao-chicken", "orange-chicken"},
	},
	{
		ID:            "shrimp-lo-mein",
		Name:          "Shrimp Lo Mein",
		NameZh:        "虾仁捞面",
		Description:   "Soft egg noodles stir-fried with plump shrimp, vegetables, and savory soy sauce.",
		DescriptionZh: "鸡蛋面与大虾仁和蔬菜炒制，酱油调味。",
		Price:         14.99,
		Category:      "Noodles & Rice",
		Image:         "/menu/shrimp-lo-mein.jpg",
		SpiceLevel:    0,
		Allergens:     []string{"Gluten", "Shellfish", "Egg", "Soy"},
		IsPopular:     true,
		Pairings:      []string{"hot-sour-soup", "spring-rolls"},
	},
	{
		ID:            "pad-thai",
		Name:          "Pad Thai",
		NameZh:        "泰式炒河粉",
		Description:   "Rice noodles stir-fried with shrimp, egg, bean sprouts, and peanuts in tamarind sauce.",
		DescriptionZh: "河粉与虾仁、鸡蛋、豆芽和花生炒制，罗望子酱调味。",
		Price:         13.99,
		Category:      "Noodles & Rice",
		Image:         "/menu/pad-thai.jpg",
		SpiceLevel:    1,
		Allergens:     []string{"Shellfish", "Peanuts", "Egg", "Soy"},
		IsPopular:     false,
		Pairings:      []string{"spring-rolls", "miso-soup"},
	},

	// Vegetables
	{
		ID:            "mapo-tofu",
		Name:          "Ma Po Tofu",
		NameZh:        "麻婆豆腐",
		Description:   "Silken tofu in a fiery Sichuan chili-bean sauce with minced pork and Sichuan peppercorns.",
		DescriptionZh: "嫩豆腐配四川辣豆瓣酱、肉末和花椒。",
		Price:         12.99,
		Category:      "Vegetables",
		Image:         "/menu/mapo-tofu.jpg",
		SpiceLevel:    3,
		Allergens:     []string{"Soy", "Gluten"},
		IsPopular:     true,
		Pairings:      []string{"fried-rice", "hot-sour-soup"},
	},

	// Desserts
	{
		ID:            "mango-sticky-rice",
		Name:          "Mango Sticky Rice",
		NameZh:        "芒果糯米饭",
		Description:   "Sweet coconut sticky rice topped with fresh mango slices and a drizzle of coconut cream.",
		DescriptionZh: "椰浆糯米饭配新鲜芒果片和椰奶。",
		Price:         6.99,
		Category:      "Desserts",
		Image:         "/menu/mango-sticky-rice.jpg",
		SpiceLevel:    0,
		Allergens:     []string{},
		IsPopular:     true,
		Pairings:      []string{},
	},
}
