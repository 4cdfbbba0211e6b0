package memory

import "vora/internal/domain/entity"

// SeedProducts returns the launch collection in display order.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "w1", Name: "Oyster Perpetual Royal", Description: "Ultimate statement in horological excellence.", Price: 12_500_000, Category: entity.CategoryLuxuryWatches, ImageURL: "https://images.unsplash.com/photo-1547996160-81dfa63595aa?auto=format&fit=crop&q=80&w=800", SellerID: "s_watch", SellerName: "Vora Watch House"},
		{ID: "w2", Name: "Gold Chronograph Master", Description: "Performance meets 18k solid gold prestige.", Price: 32_000_000, Category: entity.CategoryLuxuryWatches, ImageURL: "https://images.unsplash.com/photo-1614164185128-e4ec99c436d7?auto=format&fit=crop&q=80&w=800", SellerID: "s_watch", SellerName: "Vora Watch House"},
		{ID: "w3", Name: "Diamond Encrusted Petite", Description: "A jewelry piece that happens to tell time.", Price: 25_000_000, Category: entity.CategoryLuxuryWatches, ImageURL: "https://images.unsplash.com/photo-1523170335258-f5ed11844a49?auto=format&fit=crop&q=80&w=800", SellerID: "s_watch", SellerName: "Vora Watch House"},
		{ID: "w4", Name: "Silver Heritage Watch", Description: "Brushed silver with sapphire crystal coating.", Price: 4_200_000, Category: entity.CategoryLuxuryWatches, ImageURL: "https://images.unsplash.com/photo-1524592094714-0f0654e20314?auto=format&fit=crop&q=80&w=800", SellerID: "s_watch", SellerName: "Vora Watch House"},
		{ID: "j1", Name: "Diamond Solitaire Necklace", Description: "A perfect 2-carat diamond set in platinum.", Price: 15_000_000, Category: entity.CategoryFineJewelry, ImageURL: "https://images.unsplash.com/photo-1599643478118-d02272596a42?auto=format&fit=crop&q=80&w=800", SellerID: "s_jewel", SellerName: "Vora Atelier"},
		{ID: "j2", Name: "18k Gold Link Chain", Description: "Hand-linked Italian gold of the highest purity.", Price: 3_500_000, Category: entity.CategoryFineJewelry, ImageURL: "https://images.unsplash.com/photo-1611085583191-a3b181a88401?auto=format&fit=crop&q=80&w=800", SellerID: "s_jewel", SellerName: "Vora Atelier"},
		{ID: "j3", Name: "Eternal Diamond Band", Description: "Infinity setting with brilliant-cut diamonds.", Price: 5_500_000, Category: entity.CategoryFineJewelry, ImageURL: "https://images.unsplash.com/photo-1605100804763-247f67b3557e?auto=format&fit=crop&q=80&w=800", SellerID: "s_jewel", SellerName: "Vora Atelier"},
		{ID: "j4", Name: "Celestial Diamond Studs", Description: "Stars captured in high-clarity diamond earrings.", Price: 2_800_000, Category: entity.CategoryFineJewelry, ImageURL: "https://images.unsplash.com/photo-1635767798638-3e25273a8236?auto=format&fit=crop&q=80&w=800", SellerID: "s_jewel", SellerName: "Vora Atelier"},
		{ID: "j5", Name: "Majestic Gold Hoops", Description: "A timeless silhouette in 22k gold.", Price: 1_850_000, Category: entity.CategoryFineJewelry, ImageURL: "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?auto=format&fit=crop&q=80&w=800", SellerID: "s_jewel", SellerName: "Vora Atelier"},
		{ID: "m1", Name: "Italian Navy Wool Suit", Description: "Tailored using Super 150s Italian wool.", Price: 850_000, Category: entity.CategoryMaleCollection, ImageURL: "https://images.unsplash.com/photo-1593032465175-481ac7f402a1?auto=format&fit=crop&q=80&w=800", SellerID: "s_fashion", SellerName: "Vora Couture"},
		{ID: "f1", Name: "Ivory Satin Gown", Description: "Ethereal drape meets architectural precision.", Price: 1_200_000, Category: entity.CategoryFemaleCollection, ImageURL: "https://images.unsplash.com/photo-1595777457583-95e059d581b8?auto=format&fit=crop&q=80&w=800", SellerID: "s_fashion", SellerName: "Vora Couture"},
		{ID: "f2", Name: "Silk Slip Dress (Champagne)", Description: "Liquid silk that drapes beautifully over the form.", Price: 450_000, Category: entity.CategoryFemaleCollection, ImageURL: "https://images.unsplash.com/photo-1485230895905-ec40ba36b9bc?auto=format&fit=crop&q=80&w=800", SellerID: "s_fashion", SellerName: "Vora Couture"},
		{ID: "f3", Name: "Cashmere Wrap Coat", Description: "The ultimate in winter luxury. 100% Mongolian cashmere.", Price: 950_000, Category: entity.CategoryFemaleCollection, ImageURL: "https://images.unsplash.com/photo-1539109136881-3be0616acf4b?auto=format&fit=crop&q=80&w=800", SellerID: "s_fashion", SellerName: "Vora Couture"},
		{ID: "f4", Name: "Midnight Lace Gown", Description: "Intricate French lace with hand-sewn detailing.", Price: 1_850_000, Category: entity.CategoryFemaleCollection, ImageURL: "https://images.unsplash.com/photo-1518911710364-17ec553bde5d?auto=format&fit=crop&q=80&w=800", SellerID: "s_fashion", SellerName: "Vora Couture"},
		{ID: "f5", Name: "Structured Leather Tote", Description: "Italian calfskin with signature gold hardware.", Price: 650_000, Category: entity.CategoryFemaleCollection, ImageURL: "https://images.unsplash.com/photo-1584917865442-de89df76afd3?auto=format&fit=crop&q=80&w=800", SellerID: "s_fashion", SellerName: "Vora Couture"},
		{ID: "f6", Name: "Crystal Embellished Stilettos", Description: "Hand-applied crystals on delicate silk mesh.", Price: 580_000, Category: entity.CategoryFemaleCollection, ImageURL: "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?auto=format&fit=crop&q=80&w=800", SellerID: "s_fashion", SellerName: "Vora Couture"},
	}
}
