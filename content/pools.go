package content

// Static Turkish line pools, one per mood category. Selection is uniform with
// replacement; the pools are never mutated at runtime.
var sentencePools = map[string][]string{
	"emotional": {
		"Gece herkes uyurken düşünceler en yüksek sesle konuşur",
		"Bazı özlemler zamanla geçmez sadece sessizleşir",
		"En ağır yük kimseye anlatamadığın şeydir",
		"Herkesin içinde kimsenin bilmediği bir oda var",
		"Bazen en kalabalık yer en yalnız hissettiğin yerdir",
		"Gözlerin gülerken için ağlıyorsa kimse fark etmez",
		"Gitmek isteyip kalanların hikayesi hiç yazılmaz",
		"Bir mesajı bekleyerek geçen geceler kimseye söylenmez",
		"İnsan en çok kendine söyleyemediklerinde kaybolur",
		"Unutmak değil alışmak diyorlar buna",
	},
	"sarcastic": {
		"Herkes çok meşgul ama kimse bir şey yapmıyor",
		"İyi ki sormuşum dedirten cevaplar hiç gelmiyor",
		"Planlarım var diyorum planlarım yatmak üzerine",
		"Herkes değişmiş diyor değişen sadece filtreler",
		"Konuşacak çok şey var ama çoğu boşuna",
		"Yeni bir sayfa açtım yine aynı şeyler yazıyor",
		"Motivasyon videosu izleyerek bir saat daha kaybettim",
		"En tutarlı özelliğim aynı hataları tekrarlamak",
		"Herkesin bir hikayesi var benimki internet geçmişim",
		"Yarın başlıyorum demenin yıl dönümü bugün",
	},
	"deep": {
		"Zaman geçmiyor biz zamanın içinden geçiyoruz",
		"Her şeyin cevabı sessizlikte saklı olabilir",
		"İnsan en çok kaybettiğinde ne aradığını anlar",
		"Bir yolun sonu başka bir yolun başlangıcıdır",
		"Kendinle barışmadan kimseyle huzur bulamazsın",
		"En uzun yolculuk insanın kendine yaptığıdır",
		"Bildiğin her şey bir gün yeniden sorulur",
		"Karanlık olmadan yıldızların değeri bilinmezdi",
		"Gerçek değişim kimse görmezken başlar",
		"Bazı sorular cevaplarından daha değerlidir",
	},
	"romantic": {
		"Bazı insanlar şehrin bütün ışıklarından daha parlak",
		"Sesini duymak günün en güzel tesadüfü",
		"Sen gülünce dünyanın sesi kısılıyor sanki",
		"Gece en çok senin aklımda olduğun saat",
		"Bir bakışın bütün şarkılardan daha çok şey anlatıyor",
		"Seninle susmak bile güzel bir cümle gibi",
		"Kalabalıkta gözlerim hep seni arıyor",
		"Adın geçince hala aynı yerden yaralanıyorum",
		"Sana anlatmadığım her şey bir gece daha büyüyor",
		"İyi ki varsın demek bazen her şeyi anlatır",
	},
}

// defaultCategory is the pool used when a drawn category has no pool.
const defaultCategory = "emotional"

// Short caption lines, disjoint from the sentence pools: the caption must
// never repeat the on-video text.
var captionLines = []string{
	"Gece düşüncelerin en derin olduğu an",
	"Bazen sessizlik en iyi cevap",
	"Her şey geçer izi kalır",
	"Yalnız değil yalnız hisseden var",
	"Gecenin bir yarısı aklına düşen",
	"Bazı şeyler kelimelerle anlatılmaz",
	"İçinde bir şeyler kırıldığında",
	"Gece uzadıkça düşünceler derinleşir",
	"Kimse senin yükünü taşımaz",
	"Bazen en sessiz insanlar en çok acı çeker",
	"Gülümsemek en kolay yalan",
	"İçindeki fırtınayı kimse görmez",
	"Gece olunca her şey daha ağır",
	"Kaybetmek değil alışmak zor",
	"Bazı yaralar görünmez hep kanar",
	"Yorgunluk bazen yürekten gelir",
	"Bazen susmak en iyi cevap",
	"En çok güvendiğin en çok incitir",
	"Gece düşüncelerin seni bulduğu zaman",
}

// hashtagPool: trending Turkish tags, no spam or banned tags, stored without
// the "#" marker.
var hashtagPool = []string{
	"keşfet", "duygular", "yalnızlık", "hayathalleri", "gece",
	"istanbul", "sözler", "ruh", "düşünce", "gecehali",
	"akşam", "melankoli", "hisler", "an", "yaşam",
	"hayat", "kalp", "gecepaylaşımları", "reels", "türkiye",
	"ankara", "izmir", "gecevakti", "sessizlik", "düşünceler",
	"paylaşım", "içsel", "geceklibi", "söz", "alıntı",
	"etkileyici", "derin", "anlamlı", "motivasyon", "reel",
}
