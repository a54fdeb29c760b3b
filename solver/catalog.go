// SPDX-License-Identifier: LGPL-3.0-or-later

package solver

// The task catalog decomposes the global search into independent
// subtrees.  Each entry pins the top 16 bits of the working sequence,
// carries the occupancy bitmap induced by those bits (their 11 sliding
// windows, already validated), and records the exact number of complete
// sequences the subtree yields.  Walking the catalog in order and
// concatenating the per-task results reproduces the full enumeration in
// ascending order; see catalog_gen.go for the from-scratch derivation.

// TotalSequences is the number of binary De Bruijn sequences of order 6,
// and the sum of taskCount.
const TotalSequences = 67108864

// numTasks is the catalog size.
const numTasks = len(taskCount)

var taskPrefix = [...]uint16{
	0x810c, 0x810d, 0x810e, 0x810f, 0x8114, 0x8115, 0x8116, 0x8117,
	0x8118, 0x8119, 0x811a, 0x811b, 0x811c, 0x811d, 0x811e, 0x811f,
	0x8121, 0x8122, 0x8123, 0x8128, 0x8129, 0x812a, 0x812b, 0x812c,
	0x812d, 0x812e, 0x812f, 0x8130, 0x8131, 0x8132, 0x8133, 0x8134,
	0x8135, 0x8136, 0x8137, 0x8138, 0x8139, 0x813a, 0x813b, 0x813c,
	0x813d, 0x813f, 0x8143, 0x8144, 0x8146, 0x8147, 0x8148, 0x8149,
	0x814b, 0x814c, 0x814d, 0x814e, 0x814f, 0x8150, 0x8151, 0x8152,
	0x8153, 0x8158, 0x8159, 0x815a, 0x815b, 0x815c, 0x815d, 0x815e,
	0x815f, 0x8161, 0x8162, 0x8163, 0x8164, 0x8165, 0x8166, 0x8167,
	0x8168, 0x8169, 0x816a, 0x816b, 0x816c, 0x816e, 0x816f, 0x8170,
	0x8171, 0x8172, 0x8173, 0x8174, 0x8175, 0x8176, 0x8177, 0x8178,
	0x8179, 0x817a, 0x817b, 0x817e, 0x8184, 0x8185, 0x8188, 0x8189,
	0x818a, 0x818b, 0x818e, 0x818f, 0x8190, 0x8191, 0x8192, 0x8193,
	0x8194, 0x8195, 0x8196, 0x8197, 0x819a, 0x819b, 0x819c, 0x819d,
	0x819e, 0x819f, 0x81a1, 0x81a2, 0x81a3, 0x81a4, 0x81a5, 0x81a6,
	0x81a7, 0x81a8, 0x81a9, 0x81ab, 0x81ac, 0x81ad, 0x81ae, 0x81af,
	0x81b0, 0x81b1, 0x81b2, 0x81b3, 0x81b4, 0x81b5, 0x81b8, 0x81b9,
	0x81ba, 0x81bb, 0x81bc, 0x81bd, 0x81bf, 0x81c2, 0x81c4, 0x81c5,
	0x81c6, 0x81c8, 0x81c9, 0x81ca, 0x81cb, 0x81cc, 0x81cd, 0x81cf,
	0x81d0, 0x81d1, 0x81d2, 0x81d3, 0x81d4, 0x81d5, 0x81d6, 0x81d7,
	0x81d8, 0x81d9, 0x81da, 0x81db, 0x81dc, 0x81de, 0x81df, 0x81e1,
	0x81e2, 0x81e3, 0x81e4, 0x81e5, 0x81e6, 0x81e7, 0x81e8, 0x81e9,
	0x81ea, 0x81eb, 0x81ec, 0x81ed, 0x81ee, 0x81ef, 0x81f8, 0x81f9,
	0x81fa, 0x81fb,
}

var taskCount = [...]uint32{
	 475136,  540672,  507904,  507904,  294912,  688128,  524288,  524288,
	 245760,  327680,  227328,  313344,  253952,  303104,  278528,  278528,
	 720896,  720896,  786432,  196608,  262144,  458752,  524288,  286720,
	 434176,  360448,  360448,  206848,  399360,  311296,  425984,  265216,
	 320512,  324608,  433152,  278528,  311296,  355328,  398336,  294912,
	 376832,  671744,  327680,  327680,  229376,  229376,  196608,  196608,
	 458752,  163840,  163840,  163840,  163840,  327680,  786432,  851968,
	 655360,  286720,  368640,  458752,  458752,  393216,  393216,  393216,
	 393216,  264704,  264704,  216064,  231424,  216064,  243712,  267264,
	 219136,  337920,  458752,  229376,  524288,  360448,  360448,  162176,
	 294528,  275200,  316672,  196608,  245760,  344064,  262144,  228352,
	 295936,  221184,  303104, 1048576,  516096,  589824,  245760,  417792,
	 325632,  337920,  552960,  552960,  206848,  399360,  311296,  294912,
	 162816,  353280,  248832,  267264,  589824,  737280,  282624,  356352,
	 319488,  319488,  264704,  216064,  264704,  260096,  275456,  216064,
	 206848,  286720,  368640,  655360,   98304,  229376,  163840,  163840,
	 106496,  237568,  278528,  294912,  524288,  589824,  293888,  377856,
	 344064,  327680,  335872,  335872,  671744,  460800,  276480,  276480,
	 460800,  278528,  278528,  243712,  243712,  299008,  299008,  552960,
	 162176,  294528,  331008,  260864,  393216,  393216,  196608,  196608,
	 293888,  377856,  376832,  376832,  507904,  278528,  278528,  230400,
	 276480,  230400,  278528,  243712,  299008,  276480,  228352,  295936,
	 393216,  196608,  335872,  376832,  278528,  253952,  737280, 1097728,
	1114112, 1245184,
}

var taskOcc = [...]uint64{
	0x000000030001115f, 0x000000030001215f, 0x000000030001419f, 0x000000030001819f,
	0x0000000500120537, 0x0000000500220537, 0x0000000500420937, 0x0000000500820937,
	0x0000000901021157, 0x0000000902021157, 0x0000000904022157, 0x0000000908022157,
	0x0000000910024197, 0x0000000920024197, 0x0000000940028197, 0x0000000980028197,
	0x0000001300050317, 0x0000001500060317, 0x0000001900060317, 0x0000012100140617,
	0x0000022100140617, 0x0000042100240617, 0x0000082100240617, 0x0000102100440a17,
	0x0000202100440a17, 0x0000402100840a17, 0x0000802100840a17, 0x0001004101081217,
	0x0002004101081217, 0x0004004102081217, 0x0008004102081217, 0x0010004104082217,
	0x0020004104082217, 0x0040004108082217, 0x0080004108082217, 0x0100008110084217,
	0x0200008110084217, 0x0400008120084217, 0x0800008120084217, 0x1000008140088217,
	0x2000008140088217, 0x8000008180088217, 0x000001030011042f, 0x0000010500120437,
	0x0000010900120467, 0x00000109001204a7, 0x0000021100140527, 0x0000021100140627,
	0x0000022100140c27, 0x0000024100181427, 0x0000024100182427, 0x0000028100184427,
	0x0000028100188427, 0x0000050100310427, 0x0000050100320427, 0x0000060100340427,
	0x0000060100380427, 0x0000180101600427, 0x0000180102600427, 0x0000280104600427,
	0x0000280108600427, 0x0000480110a00427, 0x0000480120a00427, 0x0000880140a00427,
	0x0000880180a00427, 0x0001100301400827, 0x0002100501400827, 0x0002100901400827,
	0x0004101102400827, 0x0004102102400827, 0x0008104102400827, 0x0008108102400827,
	0x0010210104400827, 0x0010220104400827, 0x0020240104400827, 0x0020280104400827,
	0x0040300108400827, 0x0080600108400827, 0x0080a00108400827, 0x0101400110800827,
	0x0102400110800827, 0x0204400110800827, 0x0208400110800827, 0x0410400120800827,
	0x0420400120800827, 0x0840400120800827, 0x0880400120800827, 0x1100800140800827,
	0x1200800140800827, 0x2400800140800827, 0x2800800140800827, 0xc000800180800827,
	0x000100030100105f, 0x000100030100106f, 0x000200050100115b, 0x000200050100125b,
	0x000200050100146b, 0x000200050100186b, 0x00020009010050cb, 0x00020009010090cb,
	0x000400110201114b, 0x000400110202114b, 0x000400110204124b, 0x000400110208124b,
	0x000400210210144b, 0x000400210220144b, 0x000400210240184b, 0x000400210280184b,
	0x000800410600304b, 0x000800410a00304b, 0x000800811200504b, 0x000800812200504b,
	0x000800814200904b, 0x000800818200904b, 0x001001030401204b, 0x001001050402204b,
	0x001001090402204b, 0x001002110404204b, 0x001002210404204b, 0x001002410408204b,
	0x001002810408204b, 0x002005010410204b, 0x002006010410204b, 0x00200c010420204b,
	0x002018010440204b, 0x002028010440204b, 0x002048010480204b, 0x002088010480204b,
	0x004110010900204b, 0x004210010900204b, 0x004410010a00204b, 0x004810010a00204b,
	0x005020010c00204b, 0x006020010c00204b, 0x018040011800204b, 0x028040011800204b,
	0x048040012800204b, 0x088040012800204b, 0x108080014800204b, 0x208080014800204b,
	0x808080018800204b, 0x010100031000408f, 0x010200051000409b, 0x01020005100040ab,
	0x01020009100040cb, 0x020400111000418b, 0x020400111000428b, 0x020400211000448b,
	0x020400211000488b, 0x020800411000508b, 0x020800411000608b, 0x020800811000c08b,
	0x041001012001408b, 0x041001012002408b, 0x041002012004408b, 0x041002012008408b,
	0x042004012010408b, 0x042004012020408b, 0x042008012040408b, 0x042008012080408b,
	0x084010012100408b, 0x084010012200408b, 0x084020012400408b, 0x084020012800408b,
	0x088040013000408b, 0x088080016000408b, 0x08808001a000408b, 0x110100034000808b,
	0x110200054000808b, 0x110200094000808b, 0x120400114000808b, 0x120400214000808b,
	0x120800414000808b, 0x120800814000808b, 0x241001014000808b, 0x241002014000808b,
	0x242004014000808b, 0x242008014000808b, 0x284010014000808b, 0x284020014000808b,
	0x288040014000808b, 0x288080014000808b, 0xd10000018000808b, 0xd20000018000808b,
	0xe40000018000808b, 0xe80000018000808b,
}
