package sections

// table lists every section in order. Ayah bounds are inclusive and refer to
// the first and last chapter of the section respectively.
var table = []Section{
	{1, "آلم", "Alif Lam Meem", 1, 2, 1, 141, 141, "The Opening and The Cow (beginning)"},
	{2, "سَيَقُولُ", "Sayaqool", 2, 2, 142, 252, 111, "The Cow (continuation)"},
	{3, "تِلْكَ الرُّسُلُ", "Tilka Ar-Rusul", 2, 3, 253, 92, 126, "The Cow (end) and The Family of Imran"},
	{4, "لَنْ تَنَالُوا", "Lan Tanaaloo", 3, 4, 93, 23, 131, "The Family of Imran (end) and Women"},
	{5, "وَالْمُحْصَنَاتُ", "Wal Muhsanat", 4, 4, 24, 147, 124, "Women (continuation)"},
	{6, "لَا يُحِبُّ اللَّهُ", "La Yuhibbullah", 4, 5, 148, 81, 110, "Women (end) and The Table Spread"},
	{7, "وَإِذَا سَمِعُوا", "Wa Iza Samiu", 5, 6, 82, 110, 149, "The Table Spread (end) and Cattle"},
	{8, "وَلَوْ أَنَّنَا", "Wa Law Annana", 6, 7, 111, 87, 127, "Cattle (end) and The Heights"},
	{9, "قَالَ الْمَلَأُ", "Qalal Malao", 7, 8, 88, 40, 132, "The Heights (end) and The Spoils of War"},
	{10, "وَاعْلَمُوا", "Wa A'lamoo", 8, 9, 41, 92, 152, "The Spoils of War (end) and Repentance"},
	{11, "يَعْتَذِرُونَ", "Ya'taziroon", 9, 11, 93, 5, 149, "Repentance (end), Jonah, and Hud"},
	{12, "وَمَا مِنْ دَابَّةٍ", "Wa Ma Min Dabbah", 11, 12, 6, 52, 111, "Hud (end) and Joseph"},
	{13, "وَمَا أُبَرِّئُ", "Wa Ma Ubrioo", 12, 14, 53, 52, 100, "Joseph (end), Thunder, and Abraham"},
	{14, "رُبَمَا", "Rubama", 15, 16, 1, 128, 128, "The Rocky Tract and The Bee"},
	{15, "سُبْحَانَ الَّذِي", "Subhanalladhi", 17, 18, 1, 74, 174, "The Night Journey and The Cave"},
	{16, "قَالَ أَلَمْ", "Qala Alam", 18, 20, 75, 135, 161, "The Cave (end), Mary, and Ta-Ha"},
	{17, "اقْتَرَبَ لِلنَّاسِ", "Iqtaraba Linnas", 21, 22, 1, 78, 178, "The Prophets and The Pilgrimage"},
	{18, "قَدْ أَفْلَحَ", "Qad Aflaha", 23, 25, 1, 20, 120, "The Believers, Light, and The Criterion"},
	{19, "وَقَالَ الَّذِينَ", "Wa Qalalladheena", 25, 27, 21, 55, 135, "The Criterion (end), The Poets, and The Ant"},
	{20, "أَمَّنْ خَلَقَ", "Amman Khalaq", 27, 29, 56, 45, 140, "The Ant (end), The Story, and The Spider"},
	{21, "أُتْلُ مَا أُوحِيَ", "Utlu Ma Oohiya", 29, 33, 46, 30, 135, "The Spider (end), The Romans, Luqman, Prostration, and The Clans"},
	{22, "وَمَنْ يَقْنُتْ", "Wa Man Yaqnut", 33, 36, 31, 27, 127, "The Clans (end), Sheba, The Originator, and Ya-Sin"},
	{23, "وَمَا لِيَ", "Wa Mali", 36, 39, 28, 31, 154, "Ya-Sin (end), Those Ranged in Rows, and The Throngs"},
	{24, "فَمَنْ أَظْلَمُ", "Fa Man Azlam", 39, 41, 32, 46, 115, "The Throngs (end), The Believer, and Distinguished"},
	{25, "إِلَيْهِ يُرَدُّ", "Ilayhi Yuraddu", 41, 45, 47, 37, 141, "Distinguished (end), Consultation, Ornaments of Gold, and Crouching"},
	{26, "حم", "Ha Meem", 46, 51, 1, 30, 130, "The Wind-Curved Sandhills, Muhammad, Victory, The Chambers, and The Winnowing Winds"},
	{27, "قَالَ فَمَا خَطْبُكُمْ", "Qala Fama Khatbukum", 51, 57, 31, 29, 129, "The Winnowing Winds (end), Mount Sinai, The Star, The Moon, The Beneficent, and Iron"},
	{28, "قَدْ سَمِعَ اللَّهُ", "Qad Sami'allahu", 58, 66, 1, 12, 112, "The Disputation, The Gathering, The Ranks, The Congregation, and The Prohibition"},
	{29, "تَبَارَكَ الَّذِي", "Tabarakalladhi", 67, 77, 1, 50, 150, "The Sovereignty, The Pen, The Inevitable, The Scatterers, The Mount, and The Emissaries"},
	{30, "عَمَّ يَتَسَاءَلُونَ", "Amma Yatasaa'aloon", 78, 114, 1, 6, 37, "The Tidings, The Frowning, The Overthrowing, The Sundering, The Defrauders, The Splitting, The Constellations, The Night-Comer, The Most High, The Enveloper, The Wrapped, The Shrouded, The Resurrection, The City, The Sun, The Night, The Forenoon, The Expanding, The Fig, The Clot, The Night of Decree, The Clear Proof, The Earthquake, The Runners, The Striking, The Chargers, The Calamity, The Rivalry, The Afternoon, The Slanderer, The Elephant, Quraysh, The Abundance, The Disbelievers, The Succour, The Palm Fibre, Sincerity, The Daybreak, and The People"},
}
