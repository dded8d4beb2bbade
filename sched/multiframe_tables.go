package sched

/*-------------------------------------------------------------------
 *
 * Purpose:	Literal multiframe tables.
 *
 * Description:	The common-control configurations (CCCH, CCCH+SDCCH/4,
 *		SDCCH/8+SACCH/8C) have no closed form, so their rows
 *		are written out in full: 51 frames for plain CCCH, 102
 *		for the combined configurations whose SACCH burst ids
 *		span two 51-frame multiframes.
 *
 *-------------------------------------------------------------------*/

var tableCCCH = [...]mfEntry{
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanBCCH, 0, ChanRACH, 0},
	{ChanBCCH, 1, ChanRACH, 0},
	{ChanBCCH, 2, ChanRACH, 0},
	{ChanBCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanIdle, 0, ChanRACH, 0},
}
var tableCCCHSDCCH4 = [...]mfEntry{
	{ChanFCCH, 0, ChanSDCCH4_3, 0},
	{ChanSCH, 0, ChanSDCCH4_3, 1},
	{ChanBCCH, 0, ChanSDCCH4_3, 2},
	{ChanBCCH, 1, ChanSDCCH4_3, 3},
	{ChanBCCH, 2, ChanRACH, 0},
	{ChanBCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanSACCH4_2, 0},
	{ChanCCCH, 1, ChanSACCH4_2, 1},
	{ChanCCCH, 2, ChanSACCH4_2, 2},
	{ChanCCCH, 3, ChanSACCH4_2, 3},
	{ChanFCCH, 0, ChanSACCH4_3, 0},
	{ChanSCH, 0, ChanSACCH4_3, 1},
	{ChanCCCH, 0, ChanSACCH4_3, 2},
	{ChanCCCH, 1, ChanSACCH4_3, 3},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanSDCCH4_0, 0, ChanRACH, 0},
	{ChanSDCCH4_0, 1, ChanRACH, 0},
	{ChanSDCCH4_0, 2, ChanRACH, 0},
	{ChanSDCCH4_0, 3, ChanRACH, 0},
	{ChanSDCCH4_1, 0, ChanRACH, 0},
	{ChanSDCCH4_1, 1, ChanRACH, 0},
	{ChanSDCCH4_1, 2, ChanRACH, 0},
	{ChanSDCCH4_1, 3, ChanRACH, 0},
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanSDCCH4_2, 0, ChanRACH, 0},
	{ChanSDCCH4_2, 1, ChanRACH, 0},
	{ChanSDCCH4_2, 2, ChanRACH, 0},
	{ChanSDCCH4_2, 3, ChanRACH, 0},
	{ChanSDCCH4_3, 0, ChanRACH, 0},
	{ChanSDCCH4_3, 1, ChanSDCCH4_0, 0},
	{ChanSDCCH4_3, 2, ChanSDCCH4_0, 1},
	{ChanSDCCH4_3, 3, ChanSDCCH4_0, 2},
	{ChanFCCH, 0, ChanSDCCH4_0, 3},
	{ChanSCH, 0, ChanSDCCH4_1, 0},
	{ChanSACCH4_0, 0, ChanSDCCH4_1, 1},
	{ChanSACCH4_0, 1, ChanSDCCH4_1, 2},
	{ChanSACCH4_0, 2, ChanSDCCH4_1, 3},
	{ChanSACCH4_0, 3, ChanRACH, 0},
	{ChanSACCH4_1, 0, ChanRACH, 0},
	{ChanSACCH4_1, 1, ChanSDCCH4_2, 0},
	{ChanSACCH4_1, 2, ChanSDCCH4_2, 1},
	{ChanSACCH4_1, 3, ChanSDCCH4_2, 2},
	{ChanIdle, 0, ChanSDCCH4_2, 3},
	{ChanFCCH, 0, ChanSDCCH4_3, 0},
	{ChanSCH, 0, ChanSDCCH4_3, 1},
	{ChanBCCH, 0, ChanSDCCH4_3, 2},
	{ChanBCCH, 1, ChanSDCCH4_3, 3},
	{ChanBCCH, 2, ChanRACH, 0},
	{ChanBCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanSACCH4_0, 0},
	{ChanCCCH, 1, ChanSACCH4_0, 1},
	{ChanCCCH, 2, ChanSACCH4_0, 2},
	{ChanCCCH, 3, ChanSACCH4_0, 3},
	{ChanFCCH, 0, ChanSACCH4_1, 0},
	{ChanSCH, 0, ChanSACCH4_1, 1},
	{ChanCCCH, 0, ChanSACCH4_1, 2},
	{ChanCCCH, 1, ChanSACCH4_1, 3},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanCCCH, 0, ChanRACH, 0},
	{ChanCCCH, 1, ChanRACH, 0},
	{ChanCCCH, 2, ChanRACH, 0},
	{ChanCCCH, 3, ChanRACH, 0},
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanSDCCH4_0, 0, ChanRACH, 0},
	{ChanSDCCH4_0, 1, ChanRACH, 0},
	{ChanSDCCH4_0, 2, ChanRACH, 0},
	{ChanSDCCH4_0, 3, ChanRACH, 0},
	{ChanSDCCH4_1, 0, ChanRACH, 0},
	{ChanSDCCH4_1, 1, ChanRACH, 0},
	{ChanSDCCH4_1, 2, ChanRACH, 0},
	{ChanSDCCH4_1, 3, ChanRACH, 0},
	{ChanFCCH, 0, ChanRACH, 0},
	{ChanSCH, 0, ChanRACH, 0},
	{ChanSDCCH4_2, 0, ChanRACH, 0},
	{ChanSDCCH4_2, 1, ChanRACH, 0},
	{ChanSDCCH4_2, 2, ChanRACH, 0},
	{ChanSDCCH4_2, 3, ChanRACH, 0},
	{ChanSDCCH4_3, 0, ChanRACH, 0},
	{ChanSDCCH4_3, 1, ChanSDCCH4_0, 0},
	{ChanSDCCH4_3, 2, ChanSDCCH4_0, 1},
	{ChanSDCCH4_3, 3, ChanSDCCH4_0, 2},
	{ChanFCCH, 0, ChanSDCCH4_0, 3},
	{ChanSCH, 0, ChanSDCCH4_1, 0},
	{ChanSACCH4_2, 0, ChanSDCCH4_1, 1},
	{ChanSACCH4_2, 1, ChanSDCCH4_1, 2},
	{ChanSACCH4_2, 2, ChanSDCCH4_1, 3},
	{ChanSACCH4_2, 3, ChanRACH, 0},
	{ChanSACCH4_3, 0, ChanRACH, 0},
	{ChanSACCH4_3, 1, ChanSDCCH4_2, 0},
	{ChanSACCH4_3, 2, ChanSDCCH4_2, 1},
	{ChanSACCH4_3, 3, ChanSDCCH4_2, 2},
	{ChanIdle, 0, ChanSDCCH4_2, 3},
}
var tableSDCCH8SACCH8C = [...]mfEntry{
	{ChanSDCCH8_0, 0, ChanSACCH8_5, 0},
	{ChanSDCCH8_0, 1, ChanSACCH8_5, 1},
	{ChanSDCCH8_0, 2, ChanSACCH8_5, 2},
	{ChanSDCCH8_0, 3, ChanSACCH8_5, 3},
	{ChanSDCCH8_1, 0, ChanSACCH8_6, 0},
	{ChanSDCCH8_1, 1, ChanSACCH8_6, 1},
	{ChanSDCCH8_1, 2, ChanSACCH8_6, 2},
	{ChanSDCCH8_1, 3, ChanSACCH8_6, 3},
	{ChanSDCCH8_2, 0, ChanSACCH8_7, 0},
	{ChanSDCCH8_2, 1, ChanSACCH8_7, 1},
	{ChanSDCCH8_2, 2, ChanSACCH8_7, 2},
	{ChanSDCCH8_2, 3, ChanSACCH8_7, 3},
	{ChanSDCCH8_3, 0, ChanIdle, 0},
	{ChanSDCCH8_3, 1, ChanIdle, 0},
	{ChanSDCCH8_3, 2, ChanIdle, 0},
	{ChanSDCCH8_3, 3, ChanSDCCH8_0, 0},
	{ChanSDCCH8_4, 0, ChanSDCCH8_0, 1},
	{ChanSDCCH8_4, 1, ChanSDCCH8_0, 2},
	{ChanSDCCH8_4, 2, ChanSDCCH8_0, 3},
	{ChanSDCCH8_4, 3, ChanSDCCH8_1, 0},
	{ChanSDCCH8_5, 0, ChanSDCCH8_1, 1},
	{ChanSDCCH8_5, 1, ChanSDCCH8_1, 2},
	{ChanSDCCH8_5, 2, ChanSDCCH8_1, 3},
	{ChanSDCCH8_5, 3, ChanSDCCH8_2, 0},
	{ChanSDCCH8_6, 0, ChanSDCCH8_2, 1},
	{ChanSDCCH8_6, 1, ChanSDCCH8_2, 2},
	{ChanSDCCH8_6, 2, ChanSDCCH8_2, 3},
	{ChanSDCCH8_6, 3, ChanSDCCH8_3, 0},
	{ChanSDCCH8_7, 0, ChanSDCCH8_3, 1},
	{ChanSDCCH8_7, 1, ChanSDCCH8_3, 2},
	{ChanSDCCH8_7, 2, ChanSDCCH8_3, 3},
	{ChanSDCCH8_7, 3, ChanSDCCH8_4, 0},
	{ChanSACCH8_0, 0, ChanSDCCH8_4, 1},
	{ChanSACCH8_0, 1, ChanSDCCH8_4, 2},
	{ChanSACCH8_0, 2, ChanSDCCH8_4, 3},
	{ChanSACCH8_0, 3, ChanSDCCH8_5, 0},
	{ChanSACCH8_1, 0, ChanSDCCH8_5, 1},
	{ChanSACCH8_1, 1, ChanSDCCH8_5, 2},
	{ChanSACCH8_1, 2, ChanSDCCH8_5, 3},
	{ChanSACCH8_1, 3, ChanSDCCH8_6, 0},
	{ChanSACCH8_2, 0, ChanSDCCH8_6, 1},
	{ChanSACCH8_2, 1, ChanSDCCH8_6, 2},
	{ChanSACCH8_2, 2, ChanSDCCH8_6, 3},
	{ChanSACCH8_2, 3, ChanSDCCH8_7, 0},
	{ChanSACCH8_3, 0, ChanSDCCH8_7, 1},
	{ChanSACCH8_3, 1, ChanSDCCH8_7, 2},
	{ChanSACCH8_3, 2, ChanSDCCH8_7, 3},
	{ChanSACCH8_3, 3, ChanSACCH8_0, 0},
	{ChanIdle, 0, ChanSACCH8_0, 1},
	{ChanIdle, 0, ChanSACCH8_0, 2},
	{ChanIdle, 0, ChanSACCH8_0, 3},
	{ChanSDCCH8_0, 0, ChanSACCH8_1, 0},
	{ChanSDCCH8_0, 1, ChanSACCH8_1, 1},
	{ChanSDCCH8_0, 2, ChanSACCH8_1, 2},
	{ChanSDCCH8_0, 3, ChanSACCH8_1, 3},
	{ChanSDCCH8_1, 0, ChanSACCH8_2, 0},
	{ChanSDCCH8_1, 1, ChanSACCH8_2, 1},
	{ChanSDCCH8_1, 2, ChanSACCH8_2, 2},
	{ChanSDCCH8_1, 3, ChanSACCH8_2, 3},
	{ChanSDCCH8_2, 0, ChanSACCH8_3, 0},
	{ChanSDCCH8_2, 1, ChanSACCH8_3, 1},
	{ChanSDCCH8_2, 2, ChanSACCH8_3, 2},
	{ChanSDCCH8_2, 3, ChanSACCH8_3, 3},
	{ChanSDCCH8_3, 0, ChanIdle, 0},
	{ChanSDCCH8_3, 1, ChanIdle, 0},
	{ChanSDCCH8_3, 2, ChanIdle, 0},
	{ChanSDCCH8_3, 3, ChanSDCCH8_0, 0},
	{ChanSDCCH8_4, 0, ChanSDCCH8_0, 1},
	{ChanSDCCH8_4, 1, ChanSDCCH8_0, 2},
	{ChanSDCCH8_4, 2, ChanSDCCH8_0, 3},
	{ChanSDCCH8_4, 3, ChanSDCCH8_1, 0},
	{ChanSDCCH8_5, 0, ChanSDCCH8_1, 1},
	{ChanSDCCH8_5, 1, ChanSDCCH8_1, 2},
	{ChanSDCCH8_5, 2, ChanSDCCH8_1, 3},
	{ChanSDCCH8_5, 3, ChanSDCCH8_2, 0},
	{ChanSDCCH8_6, 0, ChanSDCCH8_2, 1},
	{ChanSDCCH8_6, 1, ChanSDCCH8_2, 2},
	{ChanSDCCH8_6, 2, ChanSDCCH8_2, 3},
	{ChanSDCCH8_6, 3, ChanSDCCH8_3, 0},
	{ChanSDCCH8_7, 0, ChanSDCCH8_3, 1},
	{ChanSDCCH8_7, 1, ChanSDCCH8_3, 2},
	{ChanSDCCH8_7, 2, ChanSDCCH8_3, 3},
	{ChanSDCCH8_7, 3, ChanSDCCH8_4, 0},
	{ChanSACCH8_4, 0, ChanSDCCH8_4, 1},
	{ChanSACCH8_4, 1, ChanSDCCH8_4, 2},
	{ChanSACCH8_4, 2, ChanSDCCH8_4, 3},
	{ChanSACCH8_4, 3, ChanSDCCH8_5, 0},
	{ChanSACCH8_5, 0, ChanSDCCH8_5, 1},
	{ChanSACCH8_5, 1, ChanSDCCH8_5, 2},
	{ChanSACCH8_5, 2, ChanSDCCH8_5, 3},
	{ChanSACCH8_5, 3, ChanSDCCH8_6, 0},
	{ChanSACCH8_6, 0, ChanSDCCH8_6, 1},
	{ChanSACCH8_6, 1, ChanSDCCH8_6, 2},
	{ChanSACCH8_6, 2, ChanSDCCH8_6, 3},
	{ChanSACCH8_6, 3, ChanSDCCH8_7, 0},
	{ChanSACCH8_7, 0, ChanSDCCH8_7, 1},
	{ChanSACCH8_7, 1, ChanSDCCH8_7, 2},
	{ChanSACCH8_7, 2, ChanSDCCH8_7, 3},
	{ChanSACCH8_7, 3, ChanSACCH8_4, 0},
	{ChanIdle, 0, ChanSACCH8_4, 1},
	{ChanIdle, 0, ChanSACCH8_4, 2},
	{ChanIdle, 0, ChanSACCH8_4, 3},
}
